package components

import (
	"log/slog"

	"ordersync/internal/handler"
	"ordersync/internal/handler/api"
	"ordersync/internal/handler/middleware"
	"ordersync/internal/pkg/config"
	"ordersync/internal/realtime"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		api.NewOrderHandler,
		api.NewCartHandler,
		api.NewRecoveryHandler,
		NewStreamHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewStreamHandler(hub *realtime.Hub, cfg config.Config, logger *slog.Logger) *api.StreamHandler {
	return api.NewStreamHandler(hub, cfg.Stream, logger)
}
