package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/mock_hotel_user.go -package=queriesmock

import "context"

type HotelUserReadStore = KeysetReadStore[HotelUserView]

type HotelUserQueries interface {
	FetchPage(ctx context.Context, cursor *Cursor, pageSize int) (Page[HotelUserView], error)
}

type hotelUserQueriesImpl struct {
	store HotelUserReadStore
}

func NewHotelUserQueries(store HotelUserReadStore) HotelUserQueries {
	return &hotelUserQueriesImpl{store: store}
}

func (q *hotelUserQueriesImpl) FetchPage(ctx context.Context, cursor *Cursor, pageSize int) (Page[HotelUserView], error) {
	return fetchPage(ctx, q.store, cursor, pageSize)
}
