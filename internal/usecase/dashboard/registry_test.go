//go:build unit

package dashboard_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/infra/memstore"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/dashboard"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGauge struct{ mounted int }

func (g *countingGauge) ViewMounted()   { g.mounted++ }
func (g *countingGauge) ViewUnmounted() { g.mounted-- }

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	gauge    *countingGauge
	registry *dashboard.Registry
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memstore.New()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	gauge := &countingGauge{}
	reg := dashboard.NewRegistry(
		queries.NewHotelUserQueries(store.HotelUsers()),
		queries.NewBookingQueries(store.Bookings()),
		commands.NewBookingCommands(store.UoW(), clk),
		nil,
		gauge,
		clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		dashboard.Config{PageSize: 10, IdleTTL: 30 * time.Minute},
	)
	return fixture{store: store, clock: clk, gauge: gauge, registry: reg}
}

func TestMount(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success: empty bookings collection mounts completed", func(t *testing.T) {
		f := newFixture(t)
		v, err := f.registry.Mount(ctx, owner, dashboard.KindBookings)
		require.NoError(t, err)

		snap := v.Bookings().Snapshot()
		assert.Empty(t, snap.Records)
		assert.True(t, snap.Completed)
		assert.Equal(t, "No bookings found", v.Kind().EmptyMessage())
		assert.Equal(t, 1, f.gauge.mounted)
	})

	t.Run("success: users view loads the first page", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddHotelUsers(builder.HotelUserSeries(25)...)
		v, err := f.registry.Mount(ctx, owner, dashboard.KindUsers)
		require.NoError(t, err)

		assert.Len(t, v.Users().Snapshot().Records, 10)
		assert.Nil(t, v.Bookings())
		_, err = v.Gate()
		assert.True(t, errs.Is(err, errs.ErrUnsupportedView))
		assert.Equal(t, "No users found", v.Kind().EmptyMessage())
	})

	t.Run("error: unknown kind", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.registry.Mount(ctx, owner, dashboard.Kind("reports"))
		assert.True(t, errs.Is(err, errs.ErrUnsupportedView))
		assert.Zero(t, f.registry.Len())
	})
}

func TestBookingDecisionThroughView(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.AddBookings(builder.NewBookingBuilder().WithID("b1").BuildReadModel())
	owner := uuid.New()

	v, err := f.registry.Mount(ctx, owner, dashboard.KindBookings)
	require.NoError(t, err)
	gate, err := v.Gate()
	require.NoError(t, err)

	_, err = gate.Request(ctx, "b1", "confirmed")
	require.NoError(t, err)
	_, err = gate.Confirm(ctx, owner)
	require.NoError(t, err)

	remote, err := f.store.Bookings().FindByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, remote.Status)

	local, ok := v.Bookings().Find("b1")
	require.True(t, ok)
	assert.Equal(t, booking.StatusConfirmed, local.Status)
	assert.Empty(t, local.Status.Actions())
}

func TestOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner, stranger := uuid.New(), uuid.New()

	v, err := f.registry.Mount(ctx, owner, dashboard.KindUsers)
	require.NoError(t, err)

	_, err = f.registry.Get(stranger, v.ID())
	assert.True(t, errs.Is(err, errs.ErrViewNotFound))
	assert.True(t, errs.Is(f.registry.Unmount(stranger, v.ID()), errs.ErrViewNotFound))

	got, err := f.registry.Get(owner, v.ID())
	require.NoError(t, err)
	assert.Same(t, v, got)

	require.NoError(t, f.registry.Unmount(owner, v.ID()))
	_, err = f.registry.Get(owner, v.ID())
	assert.True(t, errs.Is(err, errs.ErrViewNotFound))
	assert.Zero(t, f.gauge.mounted)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()

	stale, err := f.registry.Mount(ctx, owner, dashboard.KindUsers)
	require.NoError(t, err)
	f.clock.Add(20 * time.Minute)
	fresh, err := f.registry.Mount(ctx, owner, dashboard.KindBookings)
	require.NoError(t, err)
	f.clock.Add(15 * time.Minute)

	assert.Equal(t, 1, f.registry.Sweep())
	_, err = f.registry.Get(owner, stale.ID())
	assert.True(t, errs.Is(err, errs.ErrViewNotFound))
	_, err = f.registry.Get(owner, fresh.ID())
	assert.NoError(t, err)

	f.registry.Close()
	assert.Zero(t, f.registry.Len())
	assert.Zero(t, f.gauge.mounted)
}
