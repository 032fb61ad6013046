package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 12

// ErrorHandler renders the last public error a handler attached when the
// handler itself wrote nothing. Event streams are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || isEventStream(c) {
			return
		}

		if public := c.Errors.ByType(gin.ErrorTypePublic); len(public) > 0 {
			if resp, ok := public.Last().Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

// CustomRecovery turns a panic into a 500 and logs the top of the stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
				slog.Any("stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), panicStackLines)))

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, internalError())
			}
			c.Abort()
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

func isEventStream(c *gin.Context) bool {
	return strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/event-stream")
}
