package readstore

import (
	"context"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/queries"
)

type BookingReadQueries interface {
	FindRoomBookingByID(ctx context.Context, db query.DBTX, id string) (query.RoomBookings, error)
	ListRoomBookingsFirstPage(ctx context.Context, db query.DBTX, limit int32) ([]query.RoomBookings, error)
	ListRoomBookingsKeyset(ctx context.Context, db query.DBTX, arg query.ListRoomBookingsKeysetParams) ([]query.RoomBookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id string) (*queries.BookingView, error) {
	row, err := r.queries.FindRoomBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view, err := toBookingView(row)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, limit int32) ([]queries.BookingView, error) {
	rows, err := r.queries.ListRoomBookingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID string, limit int32) ([]queries.BookingView, error) {
	rows, err := r.queries.ListRoomBookingsKeyset(ctx, r.db, query.ListRoomBookingsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings after cursor", err)
	}
	return toBookingViews(rows)
}

func toBookingViews(rows []query.RoomBookings) ([]queries.BookingView, error) {
	views := make([]queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Rows are checked against the booking invariants on the way out of the store.
func toBookingView(row query.RoomBookings) (queries.BookingView, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return queries.BookingView{}, infra.WrapRepoErr("booking "+row.ID+" has an unknown status", err, infra.KindInvalidRecord)
	}
	if err := booking.ValidateGuests(row.GuestsCount); err != nil {
		return queries.BookingView{}, infra.WrapRepoErr("booking "+row.ID+" has an invalid guests count", err, infra.KindInvalidRecord)
	}

	return queries.BookingView{
		ID:          row.ID,
		RoomType:    pgconv.StringFromPgtype(row.RoomType),
		CheckIn:     pgconv.StringFromPgtype(row.CheckIn),
		CheckOut:    pgconv.StringFromPgtype(row.CheckOut),
		GuestsCount: row.GuestsCount,
		Status:      status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
