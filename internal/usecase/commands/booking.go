package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/mock_booking.go -package=commandsmock

import (
	"context"
	"fmt"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/telemetry"
	"hotel-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type BookingCommands interface {
	// UpdateStatus moves a pending booking to confirmed or cancelled and
	// records who did it. No other column of the booking is written.
	UpdateStatus(ctx context.Context, id string, status booking.Status, actor uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id string, status booking.Status, actor uuid.UUID) (err error) {
	ctx, span := telemetry.Tracer("commands").Start(ctx, "commands.UpdateBookingStatus")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "status update failed")
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("booking.id", id),
		attribute.String("booking.status", status.String()),
	)

	if !status.IsTerminal() {
		return errs.Mark(fmt.Errorf("cannot move a booking to %q", status), errs.ErrInvalidStatus)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()

		current, err := repo.LockStatus(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return err
		}

		if err := booking.ValidateTransition(current, status); err != nil {
			return markTransitionErr(err)
		}

		if err := repo.UpdateStatus(ctx, id, current, status); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrStatusTerminal)
			}
			return err
		}

		ev, err := booking.NewStatusEvent(id, current, status, actor, b.clock.Now())
		if err != nil {
			return markTransitionErr(err)
		}
		return repo.RecordStatusEvent(ctx, ev)
	})
}

func markTransitionErr(err error) error {
	if errs.Is(err, booking.ErrTerminalStatus) {
		return errs.Mark(err, errs.ErrStatusTerminal)
	}
	return errs.Mark(err, errs.ErrInvalidStatus)
}
