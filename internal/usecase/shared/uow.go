package shared

import (
	"context"
	"time"

	"hotel-admin/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction, retrying on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Operators() OperatorRepository
}

type BookingRepository interface {
	// LockStatus reads the current status and holds the row until the transaction ends
	LockStatus(ctx context.Context, id string) (booking.Status, error)
	UpdateStatus(ctx context.Context, id string, from, to booking.Status) error
	RecordStatusEvent(ctx context.Context, ev *booking.StatusEvent) error
}

type OperatorRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// TokenRevocationStore remembers logged-out token ids until they would have expired anyway.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
