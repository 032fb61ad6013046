package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps every collection in process memory with the same ordering and
// keyset rules as the SQL queries: (created_at DESC, id DESC).
type Store struct {
	mu         sync.RWMutex
	hotelUsers map[string]queries.HotelUserView
	bookings   map[string]queries.BookingView
	operators  map[uuid.UUID]operatorRow
	events     []StatusEvent
	now        func() time.Time
}

type operatorRow struct {
	view queries.OperatorView
	hash string
}

// StatusEvent is the audit row a committed decision leaves behind.
type StatusEvent struct {
	BookingID  string
	From       booking.Status
	To         booking.Status
	OperatorID uuid.UUID
	CreatedAt  time.Time
}

func New() *Store {
	return &Store{
		hotelUsers: map[string]queries.HotelUserView{},
		bookings:   map[string]queries.BookingView{},
		operators:  map[uuid.UUID]operatorRow{},
		now:        time.Now,
	}
}

// AddHotelUsers stores created_at at microsecond precision, as timestamptz
// does, so page cursors compare equal to the rows they were taken from.
func (s *Store) AddHotelUsers(users ...queries.HotelUserView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		u.CreatedAt = u.CreatedAt.Truncate(time.Microsecond)
		s.hotelUsers[u.ID] = u
	}
}

func (s *Store) AddBookings(bookings ...queries.BookingView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range bookings {
		b.CreatedAt = b.CreatedAt.Truncate(time.Microsecond)
		s.bookings[b.ID] = b
	}
}

func (s *Store) AddOperator(op *operator.Operator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operators[op.ID()] = operatorRow{
		view: queries.OperatorView{
			ID:        op.ID(),
			Email:     op.Email().Value(),
			Role:      op.Role().String(),
			IsActive:  op.IsActive(),
			LastLogin: op.LastLogin(),
		},
		hash: op.PasswordHash(),
	}
}

func (s *Store) StatusEvents() []StatusEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *Store) HotelUsers() queries.HotelUserReadStore { return hotelUserReader{s} }
func (s *Store) Bookings() queries.BookingReadStore     { return bookingReader{s} }
func (s *Store) Operators() queries.OperatorReadStore   { return operatorReader{s} }
func (s *Store) UoW() shared.UnitOfWork                 { return unitOfWork{s} }

type record interface {
	RecordID() string
	RecordCreatedAt() time.Time
}

type keysetPos struct {
	t  time.Time
	id string
}

func newestFirst[T record](a, b T) int {
	if c := b.RecordCreatedAt().Compare(a.RecordCreatedAt()); c != 0 {
		return c
	}
	return cmp.Compare(b.RecordID(), a.RecordID())
}

// olderThan reports whether r comes strictly after (t, id) in newest-first order.
func olderThan[T record](r T, t time.Time, id string) bool {
	if c := r.RecordCreatedAt().Compare(t); c != 0 {
		return c < 0
	}
	return strings.Compare(r.RecordID(), id) < 0
}

func page[T record](all []T, after *keysetPos, limit int32) []T {
	slices.SortFunc(all, newestFirst[T])
	out := make([]T, 0, limit)
	for _, r := range all {
		if after != nil && !olderThan(r, after.t, after.id) {
			continue
		}
		if int32(len(out)) >= limit { // #nosec G115 -- limit is already bounded
			break
		}
		out = append(out, r)
	}
	return out
}

type hotelUserReader struct{ s *Store }

func (r hotelUserReader) FindFirstPage(ctx context.Context, limit int32) ([]queries.HotelUserView, error) {
	return r.find(ctx, nil, limit)
}

func (r hotelUserReader) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID string, limit int32) ([]queries.HotelUserView, error) {
	return r.find(ctx, &keysetPos{t: lastCreatedAt, id: lastID}, limit)
}

func (r hotelUserReader) find(ctx context.Context, after *keysetPos, limit int32) ([]queries.HotelUserView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel users", err)
	}
	r.s.mu.RLock()
	all := make([]queries.HotelUserView, 0, len(r.s.hotelUsers))
	for _, u := range r.s.hotelUsers {
		all = append(all, u)
	}
	r.s.mu.RUnlock()
	return page(all, after, limit), nil
}

type bookingReader struct{ s *Store }

func (r bookingReader) FindByID(ctx context.Context, id string) (*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

func (r bookingReader) FindFirstPage(ctx context.Context, limit int32) ([]queries.BookingView, error) {
	return r.find(ctx, nil, limit)
}

func (r bookingReader) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID string, limit int32) ([]queries.BookingView, error) {
	return r.find(ctx, &keysetPos{t: lastCreatedAt, id: lastID}, limit)
}

func (r bookingReader) find(ctx context.Context, after *keysetPos, limit int32) ([]queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	r.s.mu.RLock()
	all := make([]queries.BookingView, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		all = append(all, b)
	}
	r.s.mu.RUnlock()
	return page(all, after, limit), nil
}

type operatorReader struct{ s *Store }

func (r operatorReader) FindByID(_ context.Context, id uuid.UUID) (*queries.OperatorView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.operators[id]
	if !ok {
		return nil, infra.WrapRepoErr("operator not found", nil, infra.KindNotFound)
	}
	v := row.view
	return &v, nil
}

func (r operatorReader) FindByEmail(_ context.Context, email string) (*queries.OperatorView, string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, row := range r.s.operators {
		if strings.EqualFold(row.view.Email, email) {
			v := row.view
			return &v, row.hash, nil
		}
	}
	return nil, "", infra.WrapRepoErr("operator not found", nil, infra.KindNotFound)
}
