package bootstrap

import (
	"hotel-admin/cmd/bootstrap/components"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

// Module wires the whole application; tests swap ConfigModule for a fixed config.
var Module = fx.Options(
	ConfigModule,
	InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))

// InfraModule is everything that needs a config.Config and nothing from the use case layer.
var InfraModule = fx.Options(
	LoggerModule,
	TelemetryModule,
	DBModule,
	RedisModule,
	JWTModule,
)

var JWTModule = fx.Module("jwt",
	fx.Provide(func(cfg config.Config) *jwt.Service {
		return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	}),
)
