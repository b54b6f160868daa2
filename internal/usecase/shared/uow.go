package shared

import (
	"context"
	"time"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Inventories() InventoryRepository
	Orders() OrderRepository
	// OrderReads sees the rows written earlier in the same transaction
	OrderReads() queries.OrderReadStore
}

type InventoryRepository interface {
	// DecrementStockIfSufficient fails with an INSUFFICIENT_STOCK repository error when stock < quantity.
	DecrementStockIfSufficient(ctx context.Context, inventoryID uuid.UUID, quantity int) error
}

type OrderRepository interface {
	Create(ctx context.Context, draft *order.Draft, createdAt time.Time) (uuid.UUID, error)
	CreateItem(ctx context.Context, orderID uuid.UUID, lineNo int, line order.Line) error
}
