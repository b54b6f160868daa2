package components

import (
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/infra/readstore"
	"order-fulfillment/internal/infra/uow"
	"order-fulfillment/internal/usecase/queries"
	"order-fulfillment/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InventoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		// Device
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DeviceReadQueries)),
		),
		fx.Annotate(
			readstore.NewDeviceReadStore,
			fx.As(new(queries.DeviceReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

// Write-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgstore.Queries {
	return pgstore.New()
}

func NewDBTX(pool *pgxpool.Pool) pgstore.DBTX {
	return pool
}

func NewUoW(pool *pgxpool.Pool, q *pgstore.Queries) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q)
}
