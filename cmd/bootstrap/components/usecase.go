package components

import (
	"context"
	"log/slog"

	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/pkg/metrics"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/dashboard"
	"hotel-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseDashboardModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *display.Formatter {
		return display.NewFormatter(cfg.Dashboard.Location())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOperatorQueries,
		queries.NewHotelUserQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseDashboardModule = fx.Module("usecase/dashboard",
	fx.Provide(NewRegistry),
	fx.Invoke(runSweeper),
)

func NewRegistry(
	users queries.HotelUserQueries,
	bookings queries.BookingQueries,
	cmds commands.BookingCommands,
	recorder *metrics.Recorder,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *dashboard.Registry {
	return dashboard.NewRegistry(users, bookings, cmds, recorder, recorder, clk, logger, dashboard.Config{
		PageSize: cfg.Dashboard.PageSize,
		IdleTTL:  cfg.Dashboard.ViewIdleTTL,
	})
}

func runSweeper(lc fx.Lifecycle, registry *dashboard.Registry, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go registry.RunSweeper(ctx, cfg.Dashboard.SweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			registry.Close()
			return nil
		},
	})
}
