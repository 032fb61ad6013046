// Package cookie carries the operator session token in an HttpOnly cookie.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"hotel-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

var sameSiteModes = map[string]http.SameSite{
	"strict": http.SameSiteStrictMode,
	"none":   http.SameSiteNoneMode,
	"lax":    http.SameSiteLaxMode,
}

func sameSite(s string) http.SameSite {
	if mode, ok := sameSiteModes[strings.ToLower(s)]; ok {
		return mode
	}
	return http.SameSiteLaxMode
}

func write(c *gin.Context, cfg config.CookieConfig, value string, expiresAt time.Time, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  expiresAt,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	})
}

// SetAccessToken lives exactly as long as the token it carries.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	write(c, cfg, token, expiresAt, maxAge)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", time.Unix(0, 0), -1)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}
