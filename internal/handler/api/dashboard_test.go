//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/handler/api"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/infra/memstore"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/pkg/metrics"
	"hotel-admin/internal/usecase/dashboard"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"
	commandsmock "hotel-admin/tests/mock/commands"
	usecasemock "hotel-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockValidator *usecasemock.MockTokenValidator
	store         *memstore.Store
	registry      *dashboard.Registry
	operatorID    uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.store = memstore.New()
	s.operatorID = uuid.New()

	recorder := metrics.New()
	s.registry = dashboard.NewRegistry(
		queries.NewHotelUserQueries(s.store.HotelUsers()),
		queries.NewBookingQueries(s.store.Bookings()),
		s.mockCommands,
		recorder,
		recorder,
		clock.NewMockClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		dashboard.Config{PageSize: 10, IdleTTL: time.Hour},
	)

	h := api.NewDashboardHandler(s.registry, display.NewFormatter(time.UTC))
	auth := middleware.NewAuthMiddleware(s.mockValidator)
	decide := auth.RequireRoleAtLeast(operator.RoleOperator)
	g := s.router.Group("/views", auth.RequireAuth())
	g.POST("", h.Mount)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Unmount)
	g.POST("/:id/more", h.More)
	g.GET("/:id/export", h.Export)
	g.GET("/:id/intent", h.GetIntent)
	g.POST("/:id/intent", decide, h.RequestIntent)
	g.POST("/:id/intent/confirm", decide, h.ConfirmIntent)
	g.POST("/:id/intent/cancel", h.CancelIntent)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.registry.Close()
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

// do performs an authenticated request as the suite's operator.
func (s *DashboardHandlerTestSuite) do(method, path string, body any) *nethttptest.ResponseRecorder {
	expectToken(s.mockValidator, s.operatorID, operator.RoleOperator)
	return httptest.PerformRequest(s.T(), s.router, method, path, body, bearerToken)
}

func (s *DashboardHandlerTestSuite) mount(kind string) resdto.ViewResponse {
	rec := s.do(http.MethodPost, "/views", map[string]any{"kind": kind})
	var view resdto.ViewResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
	return view
}

func (s *DashboardHandlerTestSuite) TestMount() {
	s.Run("success: empty users view shows the empty message", func() {
		view := s.mount("users")
		s.Equal("users", view.Kind)
		s.Equal("Users Management", view.Title)
		s.True(view.Completed)
		s.Equal("No users found", view.EmptyMessage)
		s.Empty(view.Footer)
	})

	s.Run("success: bookings view loads the first page", func() {
		s.store.AddBookings(builder.BookingSeries(15)...)
		view := s.mount("bookings")
		s.Equal("Room Booking Management", view.Title)
		s.Len(view.Records, 10)
		s.False(view.Completed)
		s.Empty(view.EmptyMessage)
	})

	s.Run("error: 400 for an unknown kind", func() {
		rec := s.do(http.MethodPost, "/views", map[string]any{"kind": "reviews"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *DashboardHandlerTestSuite) TestMore() {
	s.Run("success: pages until an empty fetch completes the view", func() {
		s.store.AddHotelUsers(builder.HotelUserSeries(12)...)
		view := s.mount("users")
		s.Len(view.Records, 10)
		path := fmt.Sprintf("/views/%s/more", view.ID)

		var next resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, path, nil), http.StatusOK, &next)
		s.Len(next.Records, 12)
		s.False(next.Completed)

		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, path, nil), http.StatusOK, &next)
		s.Len(next.Records, 12)
		s.True(next.Completed)
		s.Equal(resdto.EndOfRecordsMessage, next.Footer)

		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, path, nil), http.StatusOK, &next)
		s.True(next.Skipped)
		s.Equal("completed", next.SkipReason)
	})

	s.Run("error: views are private to the operator who mounted them", func() {
		view := s.mount("users")
		expectToken(s.mockValidator, uuid.New(), operator.RoleAdmin)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/views/%s/more", view.ID), nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "View not found")
	})

	s.Run("error: 400 for a malformed view id", func() {
		rec := s.do(http.MethodPost, "/views/not-a-uuid/more", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid view id")
	})
}

func (s *DashboardHandlerTestSuite) TestIntentFlow() {
	s.Run("success: request then confirm applies the status", func() {
		s.store.AddBookings(builder.NewBookingBuilder().WithID("b1").BuildReadModel())
		view := s.mount("bookings")
		base := fmt.Sprintf("/views/%s/intent", view.ID)

		var intent resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, base, map[string]any{"booking_id": "b1", "status": "confirmed"}), http.StatusOK, &intent)
		s.Equal("Confirm Status Change", intent.Title)
		s.Equal("Are you sure you want to confirmed this booking?", intent.Prompt)

		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), "b1", booking.StatusConfirmed, s.operatorID).Return(nil).Times(1)
		var after resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, base+"/confirm", nil), http.StatusOK, &after)
		s.Nil(after.Intent)
		rows := after.Records.([]any)
		s.Equal("confirmed", rows[0].(map[string]any)["status"])

		s.Equal(http.StatusNoContent, s.do(http.MethodGet, base, nil).Code)
	})

	s.Run("success: a failed commit leaves the row unchanged", func() {
		s.store.AddBookings(builder.NewBookingBuilder().WithID("b2").BuildReadModel())
		view := s.mount("bookings")
		base := fmt.Sprintf("/views/%s/intent", view.ID)

		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, base, map[string]any{"booking_id": "b2", "status": "cancelled"}), http.StatusOK, nil)
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), "b2", booking.StatusCancelled, s.operatorID).
			Return(errors.New("write timeout")).Times(1)

		var after resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, base+"/confirm", nil), http.StatusOK, &after)
		rows := after.Records.([]any)
		for _, r := range rows {
			if r.(map[string]any)["id"] == "b2" {
				s.Equal("pending", r.(map[string]any)["status"])
			}
		}
	})

	s.Run("success: cancel discards the pending change", func() {
		s.store.AddBookings(builder.NewBookingBuilder().WithID("b3").BuildReadModel())
		view := s.mount("bookings")
		base := fmt.Sprintf("/views/%s/intent", view.ID)

		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, base, map[string]any{"booking_id": "b3", "status": "confirmed"}), http.StatusOK, nil)
		var after resdto.ViewResponse
		httptest.AssertSuccessResponse(s.T(), s.do(http.MethodPost, base+"/cancel", nil), http.StatusOK, &after)
		s.Nil(after.Intent)

		httptest.AssertErrorResponse(s.T(), s.do(http.MethodPost, base+"/confirm", nil), http.StatusConflict, "No status change is awaiting confirmation")
	})

	s.Run("error: intent routes refuse a users view", func() {
		view := s.mount("users")
		rec := s.do(http.MethodGet, fmt.Sprintf("/views/%s/intent", view.ID), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unsupported view")
	})
}

func (s *DashboardHandlerTestSuite) TestExport() {
	s.Run("success: loaded rows become a spreadsheet", func() {
		s.store.AddHotelUsers(builder.HotelUserSeries(3)...)
		view := s.mount("users")

		rec := s.do(http.MethodGet, fmt.Sprintf("/views/%s/export", view.ID), nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Disposition"), "users.xlsx")

		f, err := excelize.OpenReader(rec.Body)
		s.Require().NoError(err)
		defer f.Close()
		rows, err := f.GetRows("Users")
		s.Require().NoError(err)
		s.Len(rows, 4)
		s.Equal("Sr. No.", rows[0][0])
	})
}

func (s *DashboardHandlerTestSuite) TestUnmount() {
	s.Run("success: a removed view is gone", func() {
		view := s.mount("users")
		path := fmt.Sprintf("/views/%s", view.ID)

		s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, nil).Code)
		httptest.AssertErrorResponse(s.T(), s.do(http.MethodGet, path, nil), http.StatusNotFound, "View not found")
	})
}
