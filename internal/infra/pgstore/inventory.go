package pgstore

import (
	"context"

	"github.com/google/uuid"
)

const inventoryColumns = `id, location, latitude, longitude, stock, device_id, created_at`

const listAvailableInventories = `
SELECT ` + inventoryColumns + `
FROM inventories
WHERE stock > 0
ORDER BY created_at, id
`

func (q *Queries) ListAvailableInventories(ctx context.Context, db DBTX) ([]Inventories, error) {
	rows, err := db.Query(ctx, listAvailableInventories)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInventory)
}

const decrementInventoryStock = `
UPDATE inventories
SET stock = stock - $2
WHERE id = $1 AND stock >= $2
`

type DecrementInventoryStockParams struct {
	ID       uuid.UUID
	Quantity int32
}

// DecrementInventoryStock returns the number of rows updated; zero means the stock was not sufficient.
func (q *Queries) DecrementInventoryStock(ctx context.Context, db DBTX, arg DecrementInventoryStockParams) (int64, error) {
	result, err := db.Exec(ctx, decrementInventoryStock, arg.ID, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createInventory = `
INSERT INTO inventories (location, latitude, longitude, stock, device_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + inventoryColumns

type CreateInventoryParams struct {
	Location  string
	Latitude  float64
	Longitude float64
	Stock     int32
	DeviceID  uuid.UUID
}

func (q *Queries) CreateInventory(ctx context.Context, db DBTX, arg CreateInventoryParams) (Inventories, error) {
	row := db.QueryRow(ctx, createInventory, arg.Location, arg.Latitude, arg.Longitude, arg.Stock, arg.DeviceID)
	return scanInventory(row)
}

func scanInventory(row rowScanner) (Inventories, error) {
	var i Inventories
	err := row.Scan(&i.ID, &i.Location, &i.Latitude, &i.Longitude, &i.Stock, &i.DeviceID, &i.CreatedAt)
	return i, err
}
