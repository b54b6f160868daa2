package allocation

import (
	"errors"
	"fmt"
	"sort"

	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrDeviceNotFound = errors.New("device not found for inventory")

// DeviceLookup resolves the device an inventory record holds.
type DeviceLookup func(id uuid.UUID) (device.Device, bool)

// Line is one warehouse's share of a request. It is never persisted directly.
type Line struct {
	InventoryID  uuid.UUID
	Location     string
	Quantity     int
	DistanceKm   float64
	ShippingCost float64
	Price        float64
}

type Result struct {
	Lines            []Line
	TotalDevicePrice float64
	TotalShipping    float64
	Unallocated      int
	NoInventory      bool
}

// Allocated is the number of units the plan assigns across all lines.
func (r Result) Allocated() int {
	n := 0
	for _, l := range r.Lines {
		n += l.Quantity
	}
	return n
}

type candidate struct {
	record   inventory.Record
	distance float64
}

// Allocate plans a nearest-first fulfilment of quantity units delivered to dest.
// Equidistant records keep their input order.
func Allocate(
	quantity int,
	dest geo.Coordinate,
	records []inventory.Record,
	lookup DeviceLookup,
	policy pricing.Policy,
) (Result, error) {
	if len(records) == 0 {
		return Result{NoInventory: true, Unallocated: quantity}, nil
	}

	candidates := make([]candidate, len(records))
	for i, rec := range records {
		candidates[i] = candidate{record: rec, distance: geo.DistanceKm(dest, rec.Coordinate())}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := Result{}
	remaining := quantity

	for _, c := range candidates {
		if remaining <= 0 {
			break
		}
		if c.record.Stock() <= 0 {
			continue
		}

		take := min(remaining, c.record.Stock())

		dev, ok := lookup(c.record.DeviceID())
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, c.record.ID())
		}

		shipping := policy.ShippingCost(c.distance, take, dev.UnitWeightKg())
		price := float64(take) * dev.UnitPrice()

		result.TotalShipping += shipping
		result.TotalDevicePrice += price
		result.Lines = append(result.Lines, Line{
			InventoryID:  c.record.ID(),
			Location:     c.record.Location(),
			Quantity:     take,
			DistanceKm:   c.distance,
			ShippingCost: shipping,
			Price:        price,
		})

		remaining -= take
	}

	result.Unallocated = max(remaining, 0)
	return result, nil
}
