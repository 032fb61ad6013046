package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/listing"
	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type Kind string

const (
	KindUsers    Kind = "users"
	KindBookings Kind = "bookings"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindUsers, KindBookings:
		return Kind(s), nil
	default:
		return "", errs.ErrUnsupportedView
	}
}

func (k Kind) Title() string {
	if k == KindBookings {
		return "Room Booking Management"
	}
	return "Users Management"
}

func (k Kind) EmptyMessage() string {
	if k == KindBookings {
		return "No bookings found"
	}
	return "No users found"
}

// View is one mounted table. Users views hold only a list; bookings views
// also carry the confirmation gate in front of status changes.
type View struct {
	id        uuid.UUID
	kind      Kind
	owner     uuid.UUID
	createdAt time.Time

	users    *listing.List[queries.HotelUserView]
	bookings *listing.List[queries.BookingView]
	gate     *listing.ConfirmationGate

	lastAccess atomic.Int64
}

func (v *View) ID() uuid.UUID        { return v.id }
func (v *View) Kind() Kind           { return v.kind }
func (v *View) Owner() uuid.UUID     { return v.owner }
func (v *View) CreatedAt() time.Time { return v.createdAt }
func (v *View) Title() string        { return v.kind.Title() }

// Users is nil for a bookings view.
func (v *View) Users() *listing.List[queries.HotelUserView] { return v.users }

// Bookings is nil for a users view.
func (v *View) Bookings() *listing.List[queries.BookingView] { return v.bookings }

func (v *View) Gate() (*listing.ConfirmationGate, error) {
	if v.gate == nil {
		return nil, errs.ErrUnsupportedView
	}
	return v.gate, nil
}

func (v *View) LoadMore(ctx context.Context) (listing.LoadResult, error) {
	if v.kind == KindBookings {
		return v.bookings.LoadMore(ctx)
	}
	return v.users.LoadMore(ctx)
}

func (v *View) LastAccess() time.Time {
	return time.Unix(0, v.lastAccess.Load())
}

func (v *View) touch(now time.Time) {
	v.lastAccess.Store(now.UnixNano())
}

func (v *View) close() {
	if v.users != nil {
		v.users.Close()
	}
	if v.bookings != nil {
		v.bookings.Close()
	}
}

// Changes yields the snapshot version after every list update. The channel
// closes when cancel is called or the view is unmounted.
func (v *View) Changes() (<-chan uint64, func()) {
	if v.kind == KindBookings {
		return forward(v.bookings.Subscribe())
	}
	return forward(v.users.Subscribe())
}

func forward[T listing.Record](in <-chan listing.Snapshot[T], cancel func()) (<-chan uint64, func()) {
	out := make(chan uint64, 1)
	go func() {
		defer close(out)
		for snap := range in {
			select {
			case out <- snap.Version:
			default:
				select {
				case <-out:
				default:
				}
				out <- snap.Version
			}
		}
	}()
	return out, cancel
}
