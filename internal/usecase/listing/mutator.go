package listing

import (
	"context"
	"log/slog"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatusCommitter interface {
	UpdateStatus(ctx context.Context, id string, status booking.Status, actor uuid.UUID) error
}

// StatusMutator commits a booking status and, only once the remote write
// succeeds, patches the matching record of the list in place.
type StatusMutator struct {
	list      *List[queries.BookingView]
	committer StatusCommitter
	opts      options
}

func NewStatusMutator(list *List[queries.BookingView], committer StatusCommitter, opts ...Option) *StatusMutator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &StatusMutator{list: list, committer: committer, opts: o}
}

func (m *StatusMutator) Apply(ctx context.Context, id string, status booking.Status, actor uuid.UUID) error {
	err := m.committer.UpdateStatus(ctx, id, status, actor)
	m.opts.observer.Decision(status.String(), err)
	if err != nil {
		m.opts.logger.ErrorContext(ctx, "status update failed",
			slog.String("booking_id", id),
			slog.String("status", status.String()),
			slog.String("error", err.Error()))
		return errs.Mark(err, errs.ErrUpdateFailed)
	}

	// A record not loaded into this list is still committed remotely.
	m.list.Replace(id, func(v queries.BookingView) queries.BookingView {
		v.Status = status
		return v
	})
	return nil
}
