package bootstrap

import (
	"log/slog"

	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger hands out the same slog instance the request middleware logs with,
// so lifecycle and request logs share one format and level.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
