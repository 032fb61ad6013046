//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingReadStore struct {
	mock.Mock
}

func (m *mockBookingReadStore) FindFirstPage(ctx context.Context, limit int32) ([]BookingView, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]BookingView)
	return rows, args.Error(1)
}

func (m *mockBookingReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID string, limit int32) ([]BookingView, error) {
	args := m.Called(ctx, lastCreatedAt, lastID, limit)
	rows, _ := args.Get(0).([]BookingView)
	return rows, args.Error(1)
}

func (m *mockBookingReadStore) FindByID(ctx context.Context, id string) (*BookingView, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*BookingView)
	return b, args.Error(1)
}

func bookingAt(id string, ts time.Time) BookingView {
	return BookingView{ID: id, RoomType: "Deluxe", GuestsCount: 2, Status: booking.StatusPending, CreatedAt: ts}
}

func TestBookingFetchPage(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("first page uses page size and yields cursor of last record", func(t *testing.T) {
		store := new(mockBookingReadStore)
		rows := []BookingView{bookingAt("b3", base.Add(2*time.Minute)), bookingAt("b2", base.Add(time.Minute))}
		store.On("FindFirstPage", mock.Anything, int32(10)).Return(rows, nil)

		page, err := NewBookingQueries(store).FetchPage(ctx, nil, 10)
		require.NoError(t, err)
		assert.Equal(t, rows, page.Records)
		require.NotNil(t, page.NextCursor)

		ts, id, err := DecodeAfterCursor(page.NextCursor.After)
		require.NoError(t, err)
		assert.Equal(t, "b2", id)
		assert.True(t, base.Add(time.Minute).Equal(ts))
		store.AssertExpectations(t)
	})

	t.Run("cursor routes to keyset query", func(t *testing.T) {
		store := new(mockBookingReadStore)
		cursor := CursorAfter(base, "b5")
		store.On("FindKeyset", mock.Anything, base, "b5", int32(3)).Return([]BookingView{bookingAt("b4", base.Add(-time.Second))}, nil)

		page, err := NewBookingQueries(store).FetchPage(ctx, cursor, 3)
		require.NoError(t, err)
		assert.Len(t, page.Records, 1)
		store.AssertExpectations(t)
	})

	t.Run("empty page has no cursor", func(t *testing.T) {
		store := new(mockBookingReadStore)
		store.On("FindFirstPage", mock.Anything, int32(DefaultPageSize)).Return([]BookingView{}, nil)

		page, err := NewBookingQueries(store).FetchPage(ctx, &Cursor{}, 0)
		require.NoError(t, err)
		assert.True(t, page.Empty())
		assert.Nil(t, page.NextCursor)
	})

	t.Run("invalid cursor never reaches the store", func(t *testing.T) {
		store := new(mockBookingReadStore)

		_, err := NewBookingQueries(store).FetchPage(ctx, &Cursor{After: "bogus"}, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidCursor))
		store.AssertNotCalled(t, "FindKeyset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure is a fetch error", func(t *testing.T) {
		store := new(mockBookingReadStore)
		store.On("FindFirstPage", mock.Anything, int32(10)).Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		_, err := NewBookingQueries(store).FetchPage(ctx, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrFetchFailed))
		assert.True(t, errs.Is(err, assert.AnError))
	})
}

func TestBookingGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		store := new(mockBookingReadStore)
		store.On("FindByID", mock.Anything, "missing").Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := NewBookingQueries(store).GetByID(ctx, "missing")
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("found", func(t *testing.T) {
		store := new(mockBookingReadStore)
		b := bookingAt("b1", time.Now())
		store.On("FindByID", mock.Anything, "b1").Return(&b, nil)

		got, err := NewBookingQueries(store).GetByID(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "b1", got.ID)
	})
}
