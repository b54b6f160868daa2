package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const getDevicesByIDs = `
SELECT id, name, unit_price, unit_weight_kg, created_at
FROM devices
WHERE id = ANY($1::uuid[])
`

func (q *Queries) GetDevicesByIDs(ctx context.Context, db DBTX, ids []pgtype.UUID) ([]Devices, error) {
	rows, err := db.Query(ctx, getDevicesByIDs, ids)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanDevice)
}

const createDevice = `
INSERT INTO devices (name, unit_price, unit_weight_kg)
VALUES ($1, $2, $3)
RETURNING id, name, unit_price, unit_weight_kg, created_at
`

type CreateDeviceParams struct {
	Name         string
	UnitPrice    decimal.Decimal
	UnitWeightKg decimal.Decimal
}

func (q *Queries) CreateDevice(ctx context.Context, db DBTX, arg CreateDeviceParams) (Devices, error) {
	row := db.QueryRow(ctx, createDevice, arg.Name, arg.UnitPrice, arg.UnitWeightKg)
	return scanDevice(row)
}

func scanDevice(row rowScanner) (Devices, error) {
	var d Devices
	err := row.Scan(&d.ID, &d.Name, &d.UnitPrice, &d.UnitWeightKg, &d.CreatedAt)
	return d, err
}
