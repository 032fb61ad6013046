//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword matches the bcrypt hash stored by CreateTestOperator.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestOperator(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	operatorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO operators (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		operatorID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM operators WHERE email = $1", email).Scan(&operatorID)
	}

	return operatorID
}

func DeactivateOperator(t *testing.T, db DBLike, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE operators SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func InsertHotelUsers(t *testing.T, db DBLike, users ...queries.HotelUserView) {
	t.Helper()

	ctx := context.Background()
	for _, u := range users {
		_, err := db.Exec(ctx, "INSERT INTO hotel_users (id, fullname, email, created_at) VALUES ($1, $2, $3, $4)",
			u.ID, u.Fullname, u.Email, u.CreatedAt)
		require.NoError(t, err)
	}
}

func InsertBookings(t *testing.T, db DBLike, bookings ...queries.BookingView) {
	t.Helper()

	ctx := context.Background()
	for _, b := range bookings {
		_, err := db.Exec(ctx, "INSERT INTO room_bookings (id, room_type, check_in, check_out, guests_count, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)",
			b.ID, b.RoomType, b.CheckIn, b.CheckOut, b.GuestsCount, b.Status.String(), b.CreatedAt)
		require.NoError(t, err)
	}
}

func BookingStatus(t *testing.T, db DBLike, id string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM room_bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountStatusEvents(t *testing.T, db DBLike, bookingID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM booking_status_events WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table the schema creates.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE booking_status_events, room_bookings, hotel_users, operators RESTART IDENTITY CASCADE`)
	return err
}
