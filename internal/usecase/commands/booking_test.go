//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra/memstore"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingUpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	actor := uuid.New()

	setup := func() (*memstore.Store, commands.BookingCommands) {
		store := memstore.New()
		store.AddBookings(
			builder.NewBookingBuilder().WithID("b1").BuildReadModel(),
			builder.NewBookingBuilder().WithID("b2").WithStatus(booking.StatusCancelled).BuildReadModel(),
		)
		return store, commands.NewBookingCommands(store.UoW(), clock.NewMockClock(now))
	}

	t.Run("success: pending booking confirmed with an audit event", func(t *testing.T) {
		store, cmds := setup()
		require.NoError(t, cmds.UpdateStatus(ctx, "b1", booking.StatusConfirmed, actor))

		got, err := store.Bookings().FindByID(ctx, "b1")
		require.NoError(t, err)
		want := builder.NewBookingBuilder().WithID("b1").WithStatus(booking.StatusConfirmed).BuildReadModel()
		assert.Equal(t, want, *got)

		events := store.StatusEvents()
		require.Len(t, events, 1)
		assert.Equal(t, memstore.StatusEvent{
			BookingID:  "b1",
			From:       booking.StatusPending,
			To:         booking.StatusConfirmed,
			OperatorID: actor,
			CreatedAt:  now,
		}, events[0])
	})

	cases := []struct {
		name   string
		id     string
		status booking.Status
		want   error
	}{
		{name: "error: terminal booking", id: "b2", status: booking.StatusConfirmed, want: errs.ErrStatusTerminal},
		{name: "error: unknown booking", id: "nope", status: booking.StatusConfirmed, want: errs.ErrBookingNotFound},
		{name: "error: pending is not a target", id: "b1", status: booking.StatusPending, want: errs.ErrInvalidStatus},
		{name: "error: garbage status", id: "b1", status: booking.Status("approved"), want: errs.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, cmds := setup()
			err := cmds.UpdateStatus(ctx, tc.id, tc.status, actor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.want), "got %v", err)
			assert.Empty(t, store.StatusEvents())
		})
	}

	t.Run("error: second decision on the same booking", func(t *testing.T) {
		_, cmds := setup()
		require.NoError(t, cmds.UpdateStatus(ctx, "b1", booking.StatusCancelled, actor))
		err := cmds.UpdateStatus(ctx, "b1", booking.StatusConfirmed, actor)
		assert.True(t, errs.Is(err, errs.ErrStatusTerminal))
	})
}
