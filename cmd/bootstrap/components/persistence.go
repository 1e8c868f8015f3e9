package components

import (
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/infra/readstore"
	"storefront-checkout/internal/infra/repository"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
	),
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Cart
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(commands.CartReads)),
			fx.As(new(queries.CartReads)),
		),
		// Coupon
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(commands.CouponReads)),
			fx.As(new(queries.CouponCatalogReads)),
		),
		// Address
		fx.Annotate(
			readstore.NewAddressReadStore,
			fx.As(new(commands.AddressReads)),
			fx.As(new(queries.AddressReads)),
		),
		// Draft (read side)
		fx.Annotate(
			readstore.NewDraftReadStore,
			fx.As(new(queries.DraftReads)),
		),
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReads)),
			fx.As(new(commands.OrderReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repository.NewDiscountStateRepository,
			fx.As(new(commands.DiscountStateRepository)),
			fx.As(new(queries.DiscountStateReads)),
		),
		fx.Annotate(
			repository.NewDraftRepository,
			fx.As(new(commands.DraftRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
