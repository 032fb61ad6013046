//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
	logger *middleware.Logger
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.logger = middleware.NewLogger(config.NewTestConfig().Log)
}

func (s *MiddlewareTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.LoggingMiddleware(s.logger), middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func serve(r *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *MiddlewareTestSuite) TestRequestID() {
	r := s.newRouter()
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	s.Run("success: generates an id and echoes it", func() {
		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/ping", nil))

		s.Equal(http.StatusNoContent, w.Code)
		s.NotEmpty(seen)
		s.Equal(seen, w.Header().Get(middleware.RequestIDHeader))
	})

	s.Run("success: keeps the caller's id", func() {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "client-42")
		w := serve(r, req)

		s.Equal("client-42", seen)
		s.Equal("client-42", w.Header().Get(middleware.RequestIDHeader))
	})
}

func (s *MiddlewareTestSuite) TestErrorHandler() {
	s.Run("success: renders the public error attached by the handler", func() {
		r := s.newRouter()
		r.GET("/booking", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "Booking has already been decided"
			_ = c.Error(&gin.Error{Err: errs.ErrStatusTerminal, Type: gin.ErrorTypePublic, Meta: resp})
		})

		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/booking", nil))

		s.Equal(http.StatusConflict, w.Code)
		s.JSONEq(`{"error":{"message":"Booking has already been decided"}}`, w.Body.String())
	})

	s.Run("error: private errors become a generic 500", func() {
		r := s.newRouter()
		r.GET("/boom", func(c *gin.Context) {
			_ = c.Error(errors.New("connection reset"))
		})

		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/boom", nil))

		s.Equal(http.StatusInternalServerError, w.Code)
		s.Contains(w.Body.String(), "Internal server error")
		s.NotContains(w.Body.String(), "connection reset")
	})

	s.Run("success: a response already written is left untouched", func() {
		r := s.newRouter()
		r.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"done": true})
			_ = c.Error(errors.New("logged only"))
		})

		w := serve(r, nethttptest.NewRequest(http.MethodGet, "/ok", nil))

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"done":true}`, w.Body.String())
	})
}

func (s *MiddlewareTestSuite) TestCustomRecovery() {
	r := s.newRouter()
	r.GET("/panic", func(*gin.Context) { panic("nil map write") })
	r.GET("/panic-err", func(*gin.Context) { panic(errors.New("index out of range")) })

	for _, path := range []string{"/panic", "/panic-err"} {
		s.Run("error: panic on "+path+" becomes 500", func() {
			w := serve(r, nethttptest.NewRequest(http.MethodGet, path, nil))

			s.Equal(http.StatusInternalServerError, w.Code)
			s.JSONEq(`{"error":{"message":"Internal server error"}}`, w.Body.String())
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://dashboard.local"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/v1/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("success: export and request id headers are exposed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		w := serve(r, req)

		require.Equal(t, http.StatusOK, w.Code)
		exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "content-disposition")
		assert.Contains(t, exposed, "x-request-id")
		assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("success: preflight allows the request id header", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		req.Header.Set("Access-Control-Request-Method", "GET")
		req.Header.Set("Access-Control-Request-Headers", "X-Request-ID")
		w := serve(r, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "x-request-id")
	})

	t.Run("error: unknown origin is rejected", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Origin", "http://evil.local")
		w := serve(r, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
