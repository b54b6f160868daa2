package repository

import (
	"context"
	"fmt"

	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"

	"github.com/google/uuid"
)

type InventoryWriteQueries interface {
	DecrementInventoryStock(ctx context.Context, db pgstore.DBTX, arg pgstore.DecrementInventoryStockParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      pgstore.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db pgstore.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// DecrementStockIfSufficient subtracts quantity only while stock >= quantity holds in the same statement.
func (r *InventoryRepository) DecrementStockIfSufficient(ctx context.Context, inventoryID uuid.UUID, quantity int) error {
	affected, err := r.queries.DecrementInventoryStock(ctx, r.db, pgstore.DecrementInventoryStockParams{
		ID:       inventoryID,
		Quantity: int32(quantity), // #nosec G115 -- bounded by stored stock
	})
	if err != nil {
		return infra.WrapRepoErr(fmt.Sprintf("failed to decrement stock of inventory %s", inventoryID), err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(fmt.Sprintf("insufficient stock for inventory %s", inventoryID), nil, infra.KindInsufficientStock)
	}
	return nil
}
