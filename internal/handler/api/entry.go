package api

import (
	"net/http"

	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	entryPath     = "/"
	dashboardPath = "/dashboard"
)

var dashboardTabs = []string{"users", "booking"}

// EntryHandler serves the two pages that bounce between each other
// depending on whether an operator is signed in.
type EntryHandler struct {
	q queries.OperatorQueries
}

func NewEntryHandler(q queries.OperatorQueries) *EntryHandler {
	return &EntryHandler{q: q}
}

// @Summary Entry point
// @Description Redirects to the dashboard when signed in, otherwise asks for login
// @Tags entry
// @Produce json
// @Success 200 {object} resdto.EntryResponse
// @Success 302
// @Router / [get]
func (h *EntryHandler) Root(c *gin.Context) {
	if _, ok := h.currentOperator(c); ok {
		c.Redirect(http.StatusFound, dashboardPath)
		return
	}
	c.JSON(http.StatusOK, resdto.EntryResponse{View: "login"})
}

// @Summary Dashboard
// @Description Tabs and current operator; redirects to the entry point when signed out
// @Tags entry
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Success 302
// @Router /dashboard [get]
func (h *EntryHandler) Dashboard(c *gin.Context) {
	op, ok := h.currentOperator(c)
	if !ok {
		c.Redirect(http.StatusFound, entryPath)
		return
	}
	resp, err := resdto.FromOperatorView(op)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DashboardResponse{
		Tabs:       dashboardTabs,
		DefaultTab: dashboardTabs[0],
		Operator:   resp,
	})
}

// currentOperator treats a deleted or deactivated operator like no session.
func (h *EntryHandler) currentOperator(c *gin.Context) (*queries.OperatorView, bool) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		return nil, false
	}
	op, err := h.q.GetCurrentOperator(c.Request.Context(), operatorID)
	if err != nil {
		if status, _ := httperr.StatusOf(err); status == http.StatusInternalServerError {
			_ = c.Error(err)
		}
		return nil, false
	}
	return op, true
}
