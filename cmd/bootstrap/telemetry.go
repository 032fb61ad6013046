package bootstrap

import (
	"context"

	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/metrics"
	"hotel-admin/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		metrics.New,
	),
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Init(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
