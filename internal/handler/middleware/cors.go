package middleware

import (
	"log/slog"
	"slices"

	"hotel-admin/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposed regardless of config: the export download needs its filename and
// clients correlate calls by request id.
var requiredExposeHeaders = []string{"Content-Disposition", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}
	allow := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allow, RequestIDHeader) {
		allow = append(allow, RequestIDHeader)
	}

	slog.Info("CORS configured",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_credentials", cfg.AllowCredentials))
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
