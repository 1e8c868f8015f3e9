package components

import (
	"storefront-checkout/internal/infra/gateway"
	"storefront-checkout/internal/infra/points"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(shared.TxRunner)),
		),
		NewPointsClient,
		NewRedirectBuilder,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		queries.NewCartQueries,
		queries.NewCheckoutQueries,
		queries.NewOrderQueries,
	),
)

func NewPointsClient(cfg config.Config) (commands.PointsLedger, queries.BalanceReads) {
	client := points.NewClient(cfg.Points)
	return client, client
}

func NewRedirectBuilder(cfg config.Config) commands.RedirectURLBuilder {
	return gateway.NewRedirectBuilder(cfg.Gateway)
}
