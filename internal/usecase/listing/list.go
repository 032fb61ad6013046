package listing

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/telemetry"
	"hotel-admin/internal/usecase/queries"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Record interface {
	RecordID() string
	RecordCreatedAt() time.Time
}

type PageSource[T Record] interface {
	FetchPage(ctx context.Context, cursor *queries.Cursor, pageSize int) (queries.Page[T], error)
}

type SkipReason string

const (
	SkipInFlight  SkipReason = "in_flight"
	SkipCompleted SkipReason = "completed"
)

type LoadResult struct {
	Fetched int
	Skipped bool
	Reason  SkipReason
}

// Snapshot is a copy of the list at one instant; callers may keep it.
type Snapshot[T Record] struct {
	Records   []T
	Completed bool
	Loading   bool
	Version   uint64
}

// List is the state behind one mounted table: records in fetch order, the
// cursor for the next page, and a completion flag that never reverts.
// At most one fetch runs at a time; overlapping LoadMore calls are dropped.
type List[T Record] struct {
	collection string
	source     PageSource[T]
	opts       options

	loading atomic.Bool
	version atomic.Uint64

	mu        sync.RWMutex
	records   []T
	index     map[string]int
	cursor    *queries.Cursor
	completed bool

	subMu  sync.Mutex
	subs   map[uint64]chan Snapshot[T]
	nextID uint64
	closed bool
}

func New[T Record](collection string, source PageSource[T], opts ...Option) *List[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &List[T]{
		collection: collection,
		source:     source,
		opts:       o,
		index:      map[string]int{},
		subs:       map[uint64]chan Snapshot[T]{},
	}
}

// LoadMore fetches the page after the current cursor and appends it.
// A failed fetch leaves records, cursor and completion untouched and is
// returned marked with errs.ErrFetchFailed after being logged.
func (l *List[T]) LoadMore(ctx context.Context) (LoadResult, error) {
	if l.isCompleted() {
		l.opts.observer.PageSkipped(l.collection)
		return LoadResult{Skipped: true, Reason: SkipCompleted}, nil
	}
	if !l.loading.CompareAndSwap(false, true) {
		l.opts.observer.PageSkipped(l.collection)
		return LoadResult{Skipped: true, Reason: SkipInFlight}, nil
	}
	defer func() {
		l.loading.Store(false)
		l.publish()
	}()

	// Another fetch may have completed the list between the check and the swap.
	if l.isCompleted() {
		l.opts.observer.PageSkipped(l.collection)
		return LoadResult{Skipped: true, Reason: SkipCompleted}, nil
	}
	l.publish()

	l.mu.RLock()
	cursor := l.cursor
	l.mu.RUnlock()

	ctx, span := telemetry.Tracer("listing").Start(ctx, "listing.LoadMore")
	defer span.End()
	span.SetAttributes(
		attribute.String("collection", l.collection),
		attribute.Int("page_size", l.opts.pageSize),
		attribute.Bool("first_page", cursor.IsZero()),
	)

	page, err := l.source.FetchPage(ctx, cursor, l.opts.pageSize)
	l.opts.observer.PageFetched(l.collection, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "page fetch failed")
		l.opts.logger.ErrorContext(ctx, "page fetch failed",
			slog.String("collection", l.collection),
			slog.String("cursor", cursorString(cursor)),
			slog.String("error", err.Error()))
		return LoadResult{}, errs.Mark(err, errs.ErrFetchFailed)
	}

	appended := l.apply(ctx, page)
	span.SetAttributes(attribute.Int("fetched", len(page.Records)), attribute.Int("appended", appended))
	return LoadResult{Fetched: len(page.Records)}, nil
}

func (l *List[T]) apply(ctx context.Context, page queries.Page[T]) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if page.Empty() {
		l.completed = true
		return 0
	}

	appended := 0
	for _, r := range page.Records {
		id := r.RecordID()
		if _, dup := l.index[id]; dup {
			l.opts.logger.WarnContext(ctx, "dropping duplicate record",
				slog.String("collection", l.collection),
				slog.String("id", id))
			continue
		}
		l.index[id] = len(l.records)
		l.records = append(l.records, r)
		appended++
	}

	if page.NextCursor != nil {
		l.cursor = page.NextCursor
	} else {
		last := page.Records[len(page.Records)-1]
		l.cursor = queries.CursorAfter(last.RecordCreatedAt(), last.RecordID())
	}
	return appended
}

func (l *List[T]) isCompleted() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.completed
}

func (l *List[T]) Loading() bool {
	return l.loading.Load()
}

func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot[T]{
		Records:   slices.Clone(l.records),
		Completed: l.completed,
		Loading:   l.loading.Load(),
		Version:   l.version.Load(),
	}
}

func (l *List[T]) Find(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return l.records[i], true
}

// Replace swaps the record with the given id for mutate's copy of it, in place.
// Copies that change the id or creation time are refused.
func (l *List[T]) Replace(id string, mutate func(T) T) bool {
	l.mu.Lock()
	i, ok := l.index[id]
	if !ok {
		l.mu.Unlock()
		return false
	}
	current := l.records[i]
	next := mutate(current)
	if next.RecordID() != current.RecordID() || !next.RecordCreatedAt().Equal(current.RecordCreatedAt()) {
		l.mu.Unlock()
		l.opts.logger.Error("refusing replacement that changes record identity",
			slog.String("collection", l.collection),
			slog.String("id", id))
		return false
	}
	l.records[i] = next
	l.mu.Unlock()

	l.publish()
	return true
}

// Subscribe returns a channel of snapshots, newest wins: a slow reader only
// ever sees the latest state. The cancel func must be called to release it.
func (l *List[T]) Subscribe() (<-chan Snapshot[T], func()) {
	ch := make(chan Snapshot[T], 1)

	l.subMu.Lock()
	if l.closed {
		l.subMu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	ch <- l.Snapshot()
	l.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.subMu.Lock()
			defer l.subMu.Unlock()
			if c, ok := l.subs[id]; ok {
				delete(l.subs, id)
				close(c)
			}
		})
	}
}

// Close ends every subscription; the list itself stays readable.
func (l *List[T]) Close() {
	l.subMu.Lock()
	defer l.subMu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for id, ch := range l.subs {
		delete(l.subs, id)
		close(ch)
	}
}

func (l *List[T]) publish() {
	l.version.Add(1)
	snap := l.Snapshot()

	l.subMu.Lock()
	defer l.subMu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func cursorString(c *queries.Cursor) string {
	if c.IsZero() {
		return ""
	}
	return c.After
}
