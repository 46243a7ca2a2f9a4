package bootstrap

import (
	"ordersync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	RealtimeModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	NotifyModule,
)
