package api

import (
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func cursorFromQuery(c *gin.Context) *queries.Cursor {
	if after := c.Query("after"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}
