//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/handler/api"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/httptest"
	queriesmock "hotel-admin/tests/mock/queries"
	usecasemock "hotel-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EntryHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockQueries   *queriesmock.MockOperatorQueries
	mockValidator *usecasemock.MockTokenValidator
}

func (s *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOperatorQueries(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	h := api.NewEntryHandler(s.mockQueries)
	g := s.router.Group("", middleware.NewAuthMiddleware(s.mockValidator).OptionalAuth())
	g.GET("/", h.Root)
	g.GET("/dashboard", h.Dashboard)
}

func (s *EntryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEntryHandlerSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}

func (s *EntryHandlerTestSuite) TestRoot() {
	s.Run("success: signed out visitors are asked to log in", func() {
		var response resdto.EntryResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("login", response.View)
	})

	s.Run("success: signed in operators go to the dashboard", func() {
		op := builder.NewOperatorBuilder().BuildReadModel()
		expectToken(s.mockValidator, op.ID, operator.RoleAdmin)
		s.mockQueries.EXPECT().GetCurrentOperator(gomock.Any(), op.ID).Return(op, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/", nil, bearerToken)
		s.Equal(http.StatusFound, rec.Code)
		s.Equal("/dashboard", rec.Header().Get("Location"))
	})
}

func (s *EntryHandlerTestSuite) TestDashboard() {
	s.Run("success: lists both tabs with users first", func() {
		op := builder.NewOperatorBuilder().BuildReadModel()
		expectToken(s.mockValidator, op.ID, operator.RoleAdmin)
		s.mockQueries.EXPECT().GetCurrentOperator(gomock.Any(), op.ID).Return(op, nil).Times(1)

		var response resdto.DashboardResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, bearerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"users", "booking"}, response.Tabs)
		s.Equal("users", response.DefaultTab)
		s.Equal(op.Email, response.Operator.Email)
	})

	s.Run("success: signed out visitors are sent back to the entry point", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, "")
		s.Equal(http.StatusFound, rec.Code)
		s.Equal("/", rec.Header().Get("Location"))
	})

	s.Run("success: a deactivated operator counts as signed out", func() {
		op := builder.NewOperatorBuilder().AsInactive().BuildReadModel()
		expectToken(s.mockValidator, op.ID, operator.RoleAdmin)
		s.mockQueries.EXPECT().GetCurrentOperator(gomock.Any(), op.ID).Return(nil, errs.ErrOperatorInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, bearerToken)
		s.Equal(http.StatusFound, rec.Code)
		s.Equal("/", rec.Header().Get("Location"))
	})
}
