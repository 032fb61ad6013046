package repository

import (
	"context"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	LockRoomBookingStatus(ctx context.Context, db query.DBTX, id string) (string, error)
	UpdateRoomBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateRoomBookingStatusParams) (int64, error)
	InsertBookingStatusEvent(ctx context.Context, db query.DBTX, arg query.InsertBookingStatusEventParams) error
}

// BookingRepository is bound to one transaction.
type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) LockStatus(ctx context.Context, id string) (booking.Status, error) {
	raw, err := r.queries.LockRoomBookingStatus(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to lock booking status", err)
	}

	status, err := booking.ParseStatus(raw)
	if err != nil {
		return "", infra.WrapRepoErr("booking "+id+" has an unknown status", err, infra.KindInvalidRecord)
	}
	return status, nil
}

// UpdateStatus only touches status and updated_at, and only while the row still holds from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to booking.Status) error {
	n, err := r.queries.UpdateRoomBookingStatus(ctx, r.db, query.UpdateRoomBookingStatusParams{
		ID:         id,
		Status:     to.String(),
		FromStatus: from.String(),
	})
	if err != nil {
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr("status rejected by schema", err, infra.KindInvalidRecord)
		}
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed underneath the update", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) RecordStatusEvent(ctx context.Context, ev *booking.StatusEvent) error {
	err := r.queries.InsertBookingStatusEvent(ctx, r.db, query.InsertBookingStatusEventParams{
		ID:         ev.ID(),
		BookingID:  ev.BookingID(),
		FromStatus: ev.From().String(),
		ToStatus:   ev.To().String(),
		OperatorID: operatorRef(ev.OperatorID()),
		CreatedAt:  pgconv.TimeToPgtype(ev.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record booking status event", err)
	}
	return nil
}

// System-initiated changes carry no operator.
func operatorRef(id uuid.UUID) pgtype.UUID {
	if id == uuid.Nil {
		return pgtype.UUID{}
	}
	return pgconv.UUIDToPgtype(id)
}
