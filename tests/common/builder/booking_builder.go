//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

var bookingEpoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID          string
	RoomType    string
	CheckIn     string
	CheckOut    string
	GuestsCount int32
	Status      booking.Status
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          "b1",
		RoomType:    "Deluxe",
		CheckIn:     "2024-02-01",
		CheckOut:    "2024-02-03",
		GuestsCount: 2,
		Status:      booking.StatusPending,
		CreatedAt:   bookingEpoch,
	}
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) WithGuests(n int32) *BookingBuilder {
	b.GuestsCount = n
	return b
}

func (b *BookingBuilder) BuildReadModel() queries.BookingView {
	return queries.BookingView{
		ID:          b.ID,
		RoomType:    b.RoomType,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		GuestsCount: b.GuestsCount,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() query.RoomBookings {
	return query.RoomBookings{
		ID:          b.ID,
		RoomType:    pgtype.Text{String: b.RoomType, Valid: true},
		CheckIn:     pgtype.Text{String: b.CheckIn, Valid: true},
		CheckOut:    pgtype.Text{String: b.CheckOut, Valid: true},
		GuestsCount: b.GuestsCount,
		Status:      b.Status.String(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

// BookingSeries returns n pending bookings b1..bn, one minute apart, newest last.
func BookingSeries(n int) []queries.BookingView {
	out := make([]queries.BookingView, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewBookingBuilder().
			WithID(fmt.Sprintf("b%02d", i)).
			WithCreatedAt(bookingEpoch.Add(time.Duration(i)*time.Minute)).
			BuildReadModel())
	}
	return out
}
