package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Operators struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type HotelUsers struct {
	ID        string             `json:"id"`
	Fullname  pgtype.Text        `json:"fullname"`
	Email     pgtype.Text        `json:"email"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type RoomBookings struct {
	ID          string             `json:"id"`
	RoomType    pgtype.Text        `json:"room_type"`
	CheckIn     pgtype.Text        `json:"check_in"`
	CheckOut    pgtype.Text        `json:"check_out"`
	GuestsCount int32              `json:"guests_count"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type BookingStatusEvents struct {
	ID         uuid.UUID          `json:"id"`
	BookingID  string             `json:"booking_id"`
	FromStatus string             `json:"from_status"`
	ToStatus   string             `json:"to_status"`
	OperatorID pgtype.UUID        `json:"operator_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
