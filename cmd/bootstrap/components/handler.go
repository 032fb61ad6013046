package components

import (
	"log/slog"

	"hotel-admin/internal/handler"
	"hotel-admin/internal/handler/api"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/display"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEntryHandler,
		api.NewDashboardHandler,
		NewRecordsHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, entry *api.EntryHandler, records *api.RecordsHandler, dash *api.DashboardHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Entry: entry, Records: records, Dashboard: dash}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewRecordsHandler(
	users queries.HotelUserQueries,
	bookings queries.BookingQueries,
	cmds commands.BookingCommands,
	formatter *display.Formatter,
	cfg config.Config,
	logger *slog.Logger,
) *api.RecordsHandler {
	return api.NewRecordsHandler(users, bookings, cmds, formatter, cfg.Dashboard.PageSize, logger)
}
