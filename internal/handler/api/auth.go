package api

import (
	"errors"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/cookie"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("no authenticated operator")

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.OperatorQueries
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.OperatorQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Operator login
// @Description Login with email and password; the access token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrAuthenticationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	op, err := resdto.FromOperatorView(result.Operator)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, result.ExpiresAt)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		Operator:    op,
	})
}

// @Summary Operator logout
// @Description Revokes the current access token and clears the cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, expiresAt, ok := middleware.GetToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Logout failed", nil)
		return
	}
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OperatorResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	op, err := h.q.GetCurrentOperator(c.Request.Context(), operatorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromOperatorView(op)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
