//go:build e2e

package dashboard_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/domain/operator"
	resdto "hotel-admin/internal/handler/dto/response"
	"hotel-admin/tests/common/authtest"
	"hotel-admin/tests/common/builder"
	"hotel-admin/tests/common/dbtest"
	"hotel-admin/tests/common/httptest"
	"hotel-admin/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const viewsURL = "/api/dashboard/views"

type dashboardSuite struct {
	e2e.SharedSuite
	operatorToken string
	viewerToken   string
}

func TestDashboardSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(dashboardSuite))
}

func (s *dashboardSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operatorToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", operator.RoleOperator.String())
	s.viewerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", operator.RoleViewer.String())
}

func (s *dashboardSuite) mount(t *testing.T, kind, token string) resdto.ViewResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, viewsURL, map[string]any{"kind": kind}, token)
	var view resdto.ViewResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &view)
	return view
}

func (s *dashboardSuite) more(t *testing.T, id, token string) resdto.ViewResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%s/more", viewsURL, id), nil, token)
	var view resdto.ViewResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
	return view
}

func (s *dashboardSuite) TestPaging() {
	s.Run("ユーザー一覧を最後まで読み込める", func() {
		t := s.T()
		dbtest.InsertHotelUsers(t, s.DB, builder.HotelUserSeries(23)...)

		view := s.mount(t, "users", s.viewerToken)
		require.Len(t, view.Records, 10)
		require.False(t, view.Completed)

		view = s.more(t, view.ID.String(), s.viewerToken)
		require.Len(t, view.Records, 20)
		view = s.more(t, view.ID.String(), s.viewerToken)
		require.Len(t, view.Records, 23)
		require.False(t, view.Completed, "空ページを取得するまで完了にならない")

		view = s.more(t, view.ID.String(), s.viewerToken)
		require.Len(t, view.Records, 23)
		require.True(t, view.Completed)
		require.Equal(t, resdto.EndOfRecordsMessage, view.Footer)

		// 新しい順で重複なし
		seen := map[string]bool{}
		for i, r := range view.Records.([]any) {
			row := r.(map[string]any)
			id := row["id"].(string)
			require.False(t, seen[id], "重複したレコード: %s", id)
			seen[id] = true
			require.Equal(t, float64(i+1), row["sr_no"])
		}
		require.Equal(t, "u23", view.Records.([]any)[0].(map[string]any)["id"])
	})

	s.Run("空のコレクション", func() {
		t := s.T()
		view := s.mount(t, "bookings", s.viewerToken)
		require.True(t, view.Completed)
		require.Equal(t, "No bookings found", view.EmptyMessage)
	})

	s.Run("ステートレスな一覧API", func() {
		t := s.T()
		dbtest.InsertBookings(t, s.DB, builder.BookingSeries(3)...)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings?limit=2", nil, s.viewerToken)
		var page resdto.PageResponse[resdto.BookingRow]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 2)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings?limit=2&after="+page.NextCursor, nil, s.viewerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		require.Equal(t, "b01", page.Items[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings?after=garbage", nil, s.viewerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *dashboardSuite) TestStatusChange() {
	s.Run("確認後にステータスが保存される", func() {
		t := s.T()
		dbtest.InsertBookings(t, s.DB, builder.NewBookingBuilder().WithID("b1").BuildReadModel())

		view := s.mount(t, "bookings", s.operatorToken)
		intentURL := fmt.Sprintf("%s/%s/intent", viewsURL, view.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL,
			map[string]any{"booking_id": "b1", "status": "cancelled"}, s.operatorToken)
		var intent resdto.IntentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &intent)
		require.Equal(t, "Are you sure you want to cancelled this booking?", intent.Prompt)

		// 確認前は書き込まれない
		require.Equal(t, booking.StatusPending.String(), dbtest.BookingStatus(t, s.DB, "b1"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL+"/confirm", nil, s.operatorToken)
		var after resdto.ViewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)

		require.Equal(t, booking.StatusCancelled.String(), dbtest.BookingStatus(t, s.DB, "b1"))
		require.Equal(t, 1, dbtest.CountStatusEvents(t, s.DB, "b1"))
		row := after.Records.([]any)[0].(map[string]any)
		require.Equal(t, "cancelled", row["status"])
		require.Empty(t, row["actions"])
	})

	s.Run("決定済みの予約は変更できない", func() {
		t := s.T()
		dbtest.InsertBookings(t, s.DB, builder.NewBookingBuilder().WithID("b2").WithStatus(booking.StatusConfirmed).BuildReadModel())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/bookings/b2/status",
			map[string]any{"status": "cancelled"}, s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Booking has already been decided")
		require.Equal(t, booking.StatusConfirmed.String(), dbtest.BookingStatus(t, s.DB, "b2"))
		require.Zero(t, dbtest.CountStatusEvents(t, s.DB, "b2"))
	})

	s.Run("閲覧者は変更できない", func() {
		t := s.T()
		dbtest.InsertBookings(t, s.DB, builder.NewBookingBuilder().WithID("b3").BuildReadModel())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/bookings/b3/status",
			map[string]any{"status": "confirmed"}, s.viewerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, booking.StatusPending.String(), dbtest.BookingStatus(t, s.DB, "b3"))
	})

	s.Run("存在しない予約", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/bookings/missing/status",
			map[string]any{"status": "confirmed"}, s.operatorToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}
