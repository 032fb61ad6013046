package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomBookingColumns = `id, room_type, check_in, check_out, guests_count, status, created_at, updated_at`

const findRoomBookingByID = `-- name: FindRoomBookingByID :one
SELECT ` + roomBookingColumns + `
FROM room_bookings
WHERE id = $1
`

func (q *Queries) FindRoomBookingByID(ctx context.Context, db DBTX, id string) (RoomBookings, error) {
	row := db.QueryRow(ctx, findRoomBookingByID, id)
	var i RoomBookings
	err := scanRoomBooking(row, &i)
	return i, err
}

const listRoomBookingsFirstPage = `-- name: ListRoomBookingsFirstPage :many
SELECT ` + roomBookingColumns + `
FROM room_bookings
ORDER BY created_at DESC, id DESC
LIMIT $1
`

func (q *Queries) ListRoomBookingsFirstPage(ctx context.Context, db DBTX, limit int32) ([]RoomBookings, error) {
	rows, err := db.Query(ctx, listRoomBookingsFirstPage, limit)
	if err != nil {
		return nil, err
	}
	return collectRoomBookings(rows)
}

const listRoomBookingsKeyset = `-- name: ListRoomBookingsKeyset :many
SELECT ` + roomBookingColumns + `
FROM room_bookings
WHERE (created_at, id) < ($1::timestamptz, $2::text)
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListRoomBookingsKeysetParams struct {
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	ID        string             `json:"id"`
	Limit     int32              `json:"limit"`
}

func (q *Queries) ListRoomBookingsKeyset(ctx context.Context, db DBTX, arg ListRoomBookingsKeysetParams) ([]RoomBookings, error) {
	rows, err := db.Query(ctx, listRoomBookingsKeyset, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectRoomBookings(rows)
}

const lockRoomBookingStatus = `-- name: LockRoomBookingStatus :one
SELECT status
FROM room_bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockRoomBookingStatus(ctx context.Context, db DBTX, id string) (string, error) {
	row := db.QueryRow(ctx, lockRoomBookingStatus, id)
	var status string
	err := row.Scan(&status)
	return status, err
}

const updateRoomBookingStatus = `-- name: UpdateRoomBookingStatus :execrows
UPDATE room_bookings
SET status = $2, updated_at = NOW()
WHERE id = $1 AND status = $3
`

type UpdateRoomBookingStatusParams struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	FromStatus string `json:"from_status"`
}

func (q *Queries) UpdateRoomBookingStatus(ctx context.Context, db DBTX, arg UpdateRoomBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateRoomBookingStatus, arg.ID, arg.Status, arg.FromStatus)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const insertBookingStatusEvent = `-- name: InsertBookingStatusEvent :exec
INSERT INTO booking_status_events (id, booking_id, from_status, to_status, operator_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertBookingStatusEventParams struct {
	ID         uuid.UUID          `json:"id"`
	BookingID  string             `json:"booking_id"`
	FromStatus string             `json:"from_status"`
	ToStatus   string             `json:"to_status"`
	OperatorID pgtype.UUID        `json:"operator_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertBookingStatusEvent(ctx context.Context, db DBTX, arg InsertBookingStatusEventParams) error {
	_, err := db.Exec(ctx, insertBookingStatusEvent,
		arg.ID,
		arg.BookingID,
		arg.FromStatus,
		arg.ToStatus,
		arg.OperatorID,
		arg.CreatedAt,
	)
	return err
}

func scanRoomBooking(row pgx.Row, i *RoomBookings) error {
	return row.Scan(
		&i.ID,
		&i.RoomType,
		&i.CheckIn,
		&i.CheckOut,
		&i.GuestsCount,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func collectRoomBookings(rows pgx.Rows) ([]RoomBookings, error) {
	defer rows.Close()
	items := []RoomBookings{}
	for rows.Next() {
		var i RoomBookings
		if err := scanRoomBooking(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
