package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/mock_booking.go -package=queriesmock

import (
	"context"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
)

type BookingReadStore interface {
	KeysetReadStore[BookingView]
	FindByID(ctx context.Context, id string) (*BookingView, error)
}

type BookingQueries interface {
	FetchPage(ctx context.Context, cursor *Cursor, pageSize int) (Page[BookingView], error)
	GetByID(ctx context.Context, id string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) FetchPage(ctx context.Context, cursor *Cursor, pageSize int) (Page[BookingView], error) {
	return fetchPage[BookingView](ctx, q.store, cursor, pageSize)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}
