package queries

import (
	"time"

	"hotel-admin/internal/domain/booking"

	"github.com/google/uuid"
)

// Page is one bounded slice of a collection in (created_at DESC, id DESC) order.
// NextCursor is nil only when Records is empty.
type Page[T any] struct {
	Records    []T
	NextCursor *Cursor
}

func (p Page[T]) Empty() bool {
	return len(p.Records) == 0
}

type HotelUserView struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (v HotelUserView) RecordID() string           { return v.ID }
func (v HotelUserView) RecordCreatedAt() time.Time { return v.CreatedAt }

type BookingView struct {
	ID          string         `json:"id"`
	RoomType    string         `json:"room_type"`
	CheckIn     string         `json:"check_in"`
	CheckOut    string         `json:"check_out"`
	GuestsCount int32          `json:"guests_count"`
	Status      booking.Status `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (v BookingView) RecordID() string           { return v.ID }
func (v BookingView) RecordCreatedAt() time.Time { return v.CreatedAt }

// OperatorView is the authenticated principal behind a dashboard session.
type OperatorView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
