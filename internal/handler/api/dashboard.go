package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/infra/export"
	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidViewID = errors.New("invalid view id")

// DashboardHandler exposes mounted views: each one keeps its own list
// state on the server and only ever grows by LoadMore.
type DashboardHandler struct {
	registry  *dashboard.Registry
	formatter *display.Formatter
}

func NewDashboardHandler(registry *dashboard.Registry, formatter *display.Formatter) *DashboardHandler {
	return &DashboardHandler{registry: registry, formatter: formatter}
}

func (h *DashboardHandler) view(c *gin.Context) (*dashboard.View, bool) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidViewID, "Invalid view id", nil)
		return nil, false
	}
	v, err := h.registry.Get(operatorID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return nil, false
	}
	return v, true
}

func (h *DashboardHandler) render(c *gin.Context, status int, v *dashboard.View) {
	resp, err := resdto.FromView(h.formatter, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

// @Summary Mount a view
// @Description Creates a users or bookings table and loads its first page
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MountViewRequest true "View kind"
// @Success 201 {object} resdto.ViewResponse
// @Failure 400 {object} httperr.Response
// @Router /dashboard/views [post]
func (h *DashboardHandler) Mount(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.MountViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	kind, err := dashboard.ParseKind(req.Kind)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	v, err := h.registry.Mount(c.Request.Context(), operatorID, kind)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusCreated, v)
}

// @Summary Get a view
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Router /dashboard/views/{id} [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, v)
}

// @Summary Load more
// @Description Appends the next page; skipped while a fetch is running or after the last page.
// @Description A failed fetch is logged and leaves the view unchanged.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Router /dashboard/views/{id}/more [post]
func (h *DashboardHandler) More(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	res, _ := v.LoadMore(c.Request.Context())

	resp, err := resdto.FromView(h.formatter, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp.WithLoadResult(res))
}

// @Summary Unmount a view
// @Tags dashboard
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /dashboard/views/{id} [delete]
func (h *DashboardHandler) Unmount(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidViewID, "Invalid view id", nil)
		return
	}
	if err := h.registry.Unmount(operatorID, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary View updates
// @Description Server-Sent Events; one "snapshot" event per state change, latest wins
// @Tags dashboard
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Router /dashboard/views/{id}/events [get]
func (h *DashboardHandler) Events(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	changes, cancel := v.Changes()
	defer cancel()

	ctx := c.Request.Context()
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case _, open := <-changes:
			if !open {
				return false
			}
			resp, err := resdto.FromView(h.formatter, v)
			if err != nil {
				_ = c.Error(err)
				return false
			}
			c.SSEvent("snapshot", resp)
			return true
		}
	})
}

func (h *DashboardHandler) gate(c *gin.Context) (*dashboard.View, bool) {
	v, ok := h.view(c)
	if !ok {
		return nil, false
	}
	if _, err := v.Gate(); err != nil {
		httperr.AbortWithDomainError(c, err)
		return nil, false
	}
	return v, true
}

// @Summary Pending status change
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {object} resdto.IntentResponse
// @Success 204 "No pending change"
// @Failure 404 {object} httperr.Response
// @Router /dashboard/views/{id}/intent [get]
func (h *DashboardHandler) GetIntent(c *gin.Context) {
	v, ok := h.gate(c)
	if !ok {
		return
	}
	gate, _ := v.Gate()
	intent, pending := gate.Pending()
	if !pending {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntent(intent))
}

// @Summary Ask to change a booking status
// @Description Opens the confirmation prompt; nothing is written until confirm
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "View ID"
// @Param request body reqdto.IntentRequest true "Booking and target status"
// @Success 200 {object} resdto.IntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /dashboard/views/{id}/intent [post]
func (h *DashboardHandler) RequestIntent(c *gin.Context) {
	v, ok := h.gate(c)
	if !ok {
		return
	}
	var req reqdto.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	gate, _ := v.Gate()
	intent, err := gate.Request(c.Request.Context(), req.BookingID, req.Status)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntent(intent))
}

// @Summary Confirm the pending status change
// @Description Commits the change; on failure the view is left as it was and the error is only logged
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /dashboard/views/{id}/intent/confirm [post]
func (h *DashboardHandler) ConfirmIntent(c *gin.Context) {
	v, ok := h.gate(c)
	if !ok {
		return
	}
	operatorID, _ := middleware.GetOperatorID(c)
	gate, _ := v.Gate()
	// a failed commit was logged by the mutator; the operator just sees the unchanged table
	if _, err := gate.Confirm(c.Request.Context(), operatorID); err != nil && !errs.Is(err, errs.ErrUpdateFailed) {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusOK, v)
}

// @Summary Dismiss the pending status change
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {object} resdto.ViewResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /dashboard/views/{id}/intent/cancel [post]
func (h *DashboardHandler) CancelIntent(c *gin.Context) {
	v, ok := h.gate(c)
	if !ok {
		return
	}
	gate, _ := v.Gate()
	if _, err := gate.Cancel(c.Request.Context()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusOK, v)
}

// @Summary Export loaded rows
// @Description Spreadsheet of the rows currently loaded in the view
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "View ID"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /dashboard/views/{id}/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	v, ok := h.view(c)
	if !ok {
		return
	}
	table, err := h.table(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, table); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, v.Kind()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *DashboardHandler) table(v *dashboard.View) (export.Table, error) {
	if v.Kind() == dashboard.KindBookings {
		rows, err := resdto.FromBookings(h.formatter, 0, v.Bookings().Snapshot().Records)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{
			Sheet:   "Bookings",
			Headers: []string{"Sr. No.", "Room Type", "Check-in", "Check-out", "Guests", "Status"},
		}
		for _, r := range rows {
			t.Rows = append(t.Rows, []any{r.SrNo, r.RoomType, r.CheckIn, r.CheckOut, r.GuestsCount, r.Status})
		}
		return t, nil
	}

	rows, err := resdto.FromHotelUsers(h.formatter, 0, v.Users().Snapshot().Records)
	if err != nil {
		return export.Table{}, err
	}
	t := export.Table{
		Sheet:   "Users",
		Headers: []string{"Sr. No.", "Full Name", "Email", "Created At"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.SrNo, r.Fullname, r.Email, r.CreatedAt})
	}
	return t, nil
}
