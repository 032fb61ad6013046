package listing

import (
	"log/slog"

	"hotel-admin/internal/usecase/queries"
)

// Observer receives one call per fetch attempt, dropped request and committed decision.
type Observer interface {
	PageFetched(collection string, err error)
	PageSkipped(collection string)
	Decision(decision string, err error)
}

type noopObserver struct{}

func (noopObserver) PageFetched(string, error) {}
func (noopObserver) PageSkipped(string)        {}
func (noopObserver) Decision(string, error)    {}

type options struct {
	pageSize int
	logger   *slog.Logger
	observer Observer
}

func defaultOptions() options {
	return options{
		pageSize: queries.DefaultPageSize,
		logger:   slog.Default(),
		observer: noopObserver{},
	}
}

type Option func(*options)

// WithPageSize clamps n to [1, queries.MaxListLimit].
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = queries.ValidateLimit(n)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
