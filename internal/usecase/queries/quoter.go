package queries

import (
	"context"
	"errors"
	"log/slog"

	"order-fulfillment/internal/domain/allocation"
	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/pricing"
	"order-fulfillment/internal/domain/quote"
	"order-fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// Quoter runs the read-only half of order placement: load stock, allocate, validate.
type Quoter struct {
	inventories InventoryReadStore
	devices     DeviceReadStore
	policy      pricing.Policy
}

func NewQuoter(inventories InventoryReadStore, devices DeviceReadStore, policy pricing.Policy) *Quoter {
	return &Quoter{
		inventories: inventories,
		devices:     devices,
		policy:      policy,
	}
}

func (q *Quoter) Quote(ctx context.Context, deviceCount int, dest geo.Coordinate) (*quote.Quote, error) {
	records, err := q.inventories.ListAvailable(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list available inventory")
	}

	deviceIDs := make([]uuid.UUID, 0, len(records))
	seen := make(map[uuid.UUID]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.DeviceID()]; ok {
			continue
		}
		seen[r.DeviceID()] = struct{}{}
		deviceIDs = append(deviceIDs, r.DeviceID())
	}

	byID := make(map[uuid.UUID]device.Device, len(deviceIDs))
	if len(deviceIDs) > 0 {
		devices, err := q.devices.FindByIDs(ctx, deviceIDs)
		if err != nil {
			return nil, errs.Wrap(err, "load devices")
		}
		for _, d := range devices {
			byID[d.ID()] = d
		}
	}

	res, err := allocation.Allocate(deviceCount, dest, records, func(id uuid.UUID) (device.Device, bool) {
		d, ok := byID[id]
		return d, ok
	}, q.policy)
	if err != nil {
		if errors.Is(err, allocation.ErrDeviceNotFound) {
			return nil, errs.Mark(err, ErrDeviceNotFound)
		}
		return nil, err
	}

	for _, l := range res.Lines {
		slog.DebugContext(ctx, "allocation line",
			"inventory_id", l.InventoryID.String(),
			"location", l.Location,
			"quantity", l.Quantity,
			"distance_km", l.DistanceKm,
		)
	}

	qt := quote.Validate(res, deviceCount, dest, q.policy)
	return &qt, nil
}
