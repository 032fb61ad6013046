package httperr

import (
	"net/http"

	"hotel-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

var domainMappings = []mapping{
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{errs.ErrUnsupportedView, http.StatusBadRequest, "Unsupported view"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{errs.ErrOperatorInactive, http.StatusForbidden, "Account is inactive"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrViewNotFound, http.StatusNotFound, "View not found"},
	{errs.ErrOperatorNotFound, http.StatusNotFound, "Operator not found"},
	{errs.ErrStatusTerminal, http.StatusConflict, "Booking has already been decided"},
	{errs.ErrIntentPending, http.StatusConflict, "Another status change is awaiting confirmation"},
	{errs.ErrNoIntent, http.StatusConflict, "No status change is awaiting confirmation"},
}

// StatusOf maps a domain error to its HTTP status and public message; unknown errors are 500.
func StatusOf(err error) (int, string) {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}
