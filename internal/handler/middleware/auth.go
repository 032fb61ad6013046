package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/pkg/cookie"
	"hotel-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxOperatorIDKey   = "operator_id"
	ctxOperatorRoleKey = "operator_role"
	ctxTokenIDKey      = "token_id"
	ctxTokenExpiryKey  = "token_expires_at"
)

var (
	errTokenMissing     = errors.New("access token missing")
	errNotAuthenticated = errors.New("role check before authentication")
	errInsufficientRole = errors.New("insufficient role")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole operator.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetOperatorRole(c)
		if !ok {
			// should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errNotAuthenticated, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func setClaims(c *gin.Context, claims *usecase.AuthClaims) {
	c.Set(ctxOperatorIDKey, claims.OperatorID)
	c.Set(ctxOperatorRoleKey, claims.Role)
	c.Set(ctxTokenIDKey, claims.TokenID)
	c.Set(ctxTokenExpiryKey, claims.ExpiresAt)
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetOperatorRole(c *gin.Context) (operator.Role, bool) {
	v, exists := c.Get(ctxOperatorRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(operator.Role)
	return role, ok
}

// GetToken returns the jti and expiry of the token that authenticated the request.
func GetToken(c *gin.Context) (string, time.Time, bool) {
	id := c.GetString(ctxTokenIDKey)
	exp := c.GetTime(ctxTokenExpiryKey)
	return id, exp, id != ""
}
