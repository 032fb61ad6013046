package bootstrap

import (
	"context"
	"log/slog"

	"hotel-admin/internal/infra/db"
	"hotel-admin/internal/infra/memstore"
	"hotel-admin/internal/infra/query"
	"hotel-admin/internal/infra/readstore"
	"hotel-admin/internal/infra/uow"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStores,
	),
)

// Stores is the storage side of the app, backed by PostgreSQL or by process memory.
type Stores struct {
	fx.Out

	HotelUsers queries.HotelUserReadStore
	Bookings   queries.BookingReadStore
	Operators  queries.OperatorReadStore
	UoW        shared.UnitOfWork
}

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	if cfg.DB.Driver == config.DriverMemory {
		store := memstore.New()
		if err := store.SeedAdmin(cfg.Seed); err != nil {
			return Stores{}, err
		}
		logger.Warn("using in-memory storage; data is lost on restart")
		return Stores{
			HotelUsers: store.HotelUsers(),
			Bookings:   store.Bookings(),
			Operators:  store.Operators(),
			UoW:        store.UoW(),
		}, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	q := query.New()
	return Stores{
		HotelUsers: readstore.NewHotelUserReadStore(q, pool),
		Bookings:   readstore.NewBookingReadStore(q, pool),
		Operators:  readstore.NewOperatorReadStore(q, pool),
		UoW:        uow.NewPostgresUoW(pool, q),
	}, nil
}
