package readstore

import (
	"context"

	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DeviceReadQueries interface {
	GetDevicesByIDs(ctx context.Context, db pgstore.DBTX, ids []pgtype.UUID) ([]pgstore.Devices, error)
}

type DeviceReadStore struct {
	queries DeviceReadQueries
	db      pgstore.DBTX
}

func NewDeviceReadStore(queries DeviceReadQueries, db pgstore.DBTX) *DeviceReadStore {
	return &DeviceReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByIDs returns the devices that exist among ids. Missing ids are not an error here.
func (r *DeviceReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]device.Device, error) {
	params := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		params[i] = pgconv.UUIDToPgtype(id)
	}

	rows, err := r.queries.GetDevicesByIDs(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get devices by ids", err)
	}

	devices := make([]device.Device, len(rows))
	for i, row := range rows {
		price, _ := row.UnitPrice.Float64()
		weight, _ := row.UnitWeightKg.Float64()
		devices[i] = device.Reconstruct(row.ID, row.Name, price, weight)
	}
	return devices, nil
}
