package memstore

import (
	"context"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type unitOfWork struct{ s *Store }

// Within serialises transactions on the store lock; staged writes are applied only when fn succeeds.
func (u unitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	tx := &memTx{
		s:        u.s,
		statuses: map[string]booking.Status{},
		logins:   map[uuid.UUID]struct{}{},
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("transaction aborted", err)
	}
	tx.commit()
	return nil
}

type memTx struct {
	s        *Store
	statuses map[string]booking.Status
	events   []StatusEvent
	logins   map[uuid.UUID]struct{}
}

func (t *memTx) Bookings() shared.BookingRepository   { return bookingWriter{t} }
func (t *memTx) Operators() shared.OperatorRepository { return operatorWriter{t} }

func (t *memTx) commit() {
	for id, status := range t.statuses {
		b := t.s.bookings[id]
		b.Status = status
		t.s.bookings[id] = b
	}
	t.s.events = append(t.s.events, t.events...)
	now := t.s.now()
	for id := range t.logins {
		row := t.s.operators[id]
		row.view.LastLogin = &now
		t.s.operators[id] = row
	}
}

type bookingWriter struct{ tx *memTx }

func (w bookingWriter) LockStatus(_ context.Context, id string) (booking.Status, error) {
	if staged, ok := w.tx.statuses[id]; ok {
		return staged, nil
	}
	b, ok := w.tx.s.bookings[id]
	if !ok {
		return "", infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b.Status, nil
}

func (w bookingWriter) UpdateStatus(ctx context.Context, id string, from, to booking.Status) error {
	current, err := w.LockStatus(ctx, id)
	if err != nil {
		return err
	}
	if current != from {
		return infra.WrapRepoErr("booking status changed underneath the update", nil, infra.KindConflict)
	}
	w.tx.statuses[id] = to
	return nil
}

func (w bookingWriter) RecordStatusEvent(_ context.Context, ev *booking.StatusEvent) error {
	w.tx.events = append(w.tx.events, StatusEvent{
		BookingID:  ev.BookingID(),
		From:       ev.From(),
		To:         ev.To(),
		OperatorID: ev.OperatorID(),
		CreatedAt:  ev.CreatedAt(),
	})
	return nil
}

type operatorWriter struct{ tx *memTx }

func (w operatorWriter) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	if _, ok := w.tx.s.operators[id]; !ok {
		return infra.WrapRepoErr("operator not found", nil, infra.KindNotFound)
	}
	w.tx.logins[id] = struct{}{}
	return nil
}
