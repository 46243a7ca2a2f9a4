package bootstrap

import (
	"log/slog"

	"ordersync/internal/realtime"
	"ordersync/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		func(logger *slog.Logger) *realtime.Hub {
			return realtime.NewHub(logger)
		},
		fx.Annotate(
			func(hub *realtime.Hub) *realtime.Hub { return hub },
			fx.As(new(commands.EventPublisher)),
		),
	),
)
