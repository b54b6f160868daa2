package readstore

import (
	"context"

	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"
)

type InventoryReadQueries interface {
	ListAvailableInventories(ctx context.Context, db pgstore.DBTX) ([]pgstore.Inventories, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      pgstore.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db pgstore.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

// ListAvailable returns records with positive stock in creation order.
func (r *InventoryReadStore) ListAvailable(ctx context.Context) ([]inventory.Record, error) {
	rows, err := r.queries.ListAvailableInventories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available inventories", err)
	}

	records := make([]inventory.Record, len(rows))
	for i, row := range rows {
		records[i] = inventory.Reconstruct(
			row.ID,
			row.Location,
			geo.NewCoordinate(row.Latitude, row.Longitude),
			int(row.Stock),
			row.DeviceID,
		)
	}
	return records, nil
}
