package middleware

import (
	"strconv"

	"hotel-admin/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.HTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
