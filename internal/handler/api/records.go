package api

import (
	"log/slog"
	"net/http"

	"hotel-admin/internal/domain/booking"
	reqdto "hotel-admin/internal/handler/dto/request"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// RecordsHandler is the stateless read/write API over both collections.
// Unlike dashboard views it reports every failure to the caller.
type RecordsHandler struct {
	users     queries.HotelUserQueries
	bookings  queries.BookingQueries
	cmds      commands.BookingCommands
	formatter *display.Formatter
	pageSize  int
	logger    *slog.Logger
}

func NewRecordsHandler(
	users queries.HotelUserQueries,
	bookings queries.BookingQueries,
	cmds commands.BookingCommands,
	formatter *display.Formatter,
	pageSize int,
	logger *slog.Logger,
) *RecordsHandler {
	return &RecordsHandler{
		users:     users,
		bookings:  bookings,
		cmds:      cmds,
		formatter: formatter,
		pageSize:  queries.ValidateLimit(pageSize),
		logger:    logger,
	}
}

func (h *RecordsHandler) bindPage(c *gin.Context) (*queries.Cursor, int, bool) {
	var req reqdto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return nil, 0, false
	}
	limit := h.pageSize
	if req.Limit > 0 {
		limit = queries.ValidateLimit(req.Limit)
	}
	return cursorFromQuery(c), limit, true
}

// @Summary List hotel users
// @Description One page of hotel users, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default PAGE_SIZE)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PageResponse[resdto.HotelUserRow]
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /users [get]
func (h *RecordsHandler) ListUsers(c *gin.Context) {
	cursor, limit, ok := h.bindPage(c)
	if !ok {
		return
	}
	page, err := h.users.FetchPage(c.Request.Context(), cursor, limit)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list hotel users failed",
			slog.String("request_id", middleware.GetRequestID(c)), slog.String("error", err.Error()))
		httperr.AbortWithDomainError(c, err)
		return
	}
	rows, err := resdto.FromHotelUsers(h.formatter, 0, page.Records)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPageResponse(page, rows))
}

// @Summary List bookings
// @Description One page of room bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default PAGE_SIZE)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PageResponse[resdto.BookingRow]
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *RecordsHandler) ListBookings(c *gin.Context) {
	cursor, limit, ok := h.bindPage(c)
	if !ok {
		return
	}
	page, err := h.bookings.FetchPage(c.Request.Context(), cursor, limit)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list bookings failed",
			slog.String("request_id", middleware.GetRequestID(c)), slog.String("error", err.Error()))
		httperr.AbortWithDomainError(c, err)
		return
	}
	rows, err := resdto.FromBookings(h.formatter, 0, page.Records)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPageResponse(page, rows))
}

// @Summary Decide a booking
// @Description Moves a pending booking to confirmed or cancelled
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingRow
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *RecordsHandler) UpdateBookingStatus(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	status, err := booking.ParseDecision(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidStatus), "Invalid status", nil)
		return
	}

	id := c.Param("id")
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, status, operatorID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	rows, err := resdto.FromBookings(h.formatter, 0, []queries.BookingView{*view})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, rows[0])
}
