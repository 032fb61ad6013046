package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/listing"
	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

// Gauge tracks how many views are mounted.
type Gauge interface {
	ViewMounted()
	ViewUnmounted()
}

type Config struct {
	PageSize int
	IdleTTL  time.Duration
}

// Registry owns every mounted view. Views never share list state; a view is
// visible only to the operator who mounted it.
type Registry struct {
	users    queries.HotelUserQueries
	bookings queries.BookingQueries
	commands commands.BookingCommands
	observer listing.Observer
	gauge    Gauge
	clock    clock.Clock
	logger   *slog.Logger
	cfg      Config

	mu    sync.Mutex
	views map[uuid.UUID]*View
}

func NewRegistry(
	users queries.HotelUserQueries,
	bookings queries.BookingQueries,
	cmds commands.BookingCommands,
	observer listing.Observer,
	gauge Gauge,
	clk clock.Clock,
	logger *slog.Logger,
	cfg Config,
) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		users:    users,
		bookings: bookings,
		commands: cmds,
		observer: observer,
		gauge:    gauge,
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
		views:    map[uuid.UUID]*View{},
	}
}

// Mount creates a view and loads its first page. A failed first fetch is
// logged by the list and leaves an empty, not completed view.
func (r *Registry) Mount(ctx context.Context, owner uuid.UUID, kind Kind) (*View, error) {
	now := r.clock.Now()
	v := &View{
		id:        uuid.New(),
		kind:      kind,
		owner:     owner,
		createdAt: now,
	}
	v.touch(now)

	opts := []listing.Option{
		listing.WithPageSize(r.cfg.PageSize),
		listing.WithLogger(r.logger),
		listing.WithObserver(r.observer),
	}
	switch kind {
	case KindUsers:
		v.users = listing.New[queries.HotelUserView](string(KindUsers), r.users, opts...)
	case KindBookings:
		v.bookings = listing.New[queries.BookingView](string(KindBookings), r.bookings, opts...)
		mutator := listing.NewStatusMutator(v.bookings, r.commands, opts...)
		v.gate = listing.NewConfirmationGate(v.bookings, mutator)
	default:
		return nil, errs.ErrUnsupportedView
	}

	r.mu.Lock()
	r.views[v.id] = v
	r.mu.Unlock()
	if r.gauge != nil {
		r.gauge.ViewMounted()
	}
	r.logger.InfoContext(ctx, "dashboard view mounted",
		slog.String("view_id", v.id.String()),
		slog.String("kind", string(kind)),
		slog.String("operator_id", owner.String()))

	_, _ = v.LoadMore(ctx)
	return v, nil
}

// Get returns the view if owner mounted it; any other operator gets ErrViewNotFound.
func (r *Registry) Get(owner, id uuid.UUID) (*View, error) {
	r.mu.Lock()
	v, ok := r.views[id]
	r.mu.Unlock()
	if !ok || v.owner != owner {
		return nil, errs.ErrViewNotFound
	}
	v.touch(r.clock.Now())
	return v, nil
}

func (r *Registry) Unmount(owner, id uuid.UUID) error {
	r.mu.Lock()
	v, ok := r.views[id]
	if !ok || v.owner != owner {
		r.mu.Unlock()
		return errs.ErrViewNotFound
	}
	delete(r.views, id)
	r.mu.Unlock()

	r.release(v)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep unmounts views idle for longer than the configured TTL.
func (r *Registry) Sweep() int {
	if r.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := r.clock.Now().Add(-r.cfg.IdleTTL)

	var idle []*View
	r.mu.Lock()
	for id, v := range r.views {
		if v.LastAccess().Before(cutoff) {
			delete(r.views, id)
			idle = append(idle, v)
		}
	}
	r.mu.Unlock()

	for _, v := range idle {
		r.release(v)
	}
	if len(idle) > 0 {
		r.logger.Info("evicted idle dashboard views", slog.Int("count", len(idle)))
	}
	return len(idle)
}

func (r *Registry) RunSweeper(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close unmounts everything; used on shutdown so SSE streams end.
func (r *Registry) Close() {
	r.mu.Lock()
	views := make([]*View, 0, len(r.views))
	for id, v := range r.views {
		delete(r.views, id)
		views = append(views, v)
	}
	r.mu.Unlock()

	for _, v := range views {
		r.release(v)
	}
}

func (r *Registry) release(v *View) {
	v.close()
	if r.gauge != nil {
		r.gauge.ViewUnmounted()
	}
}
