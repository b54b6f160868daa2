//go:build unit || e2e

package builder

import (
	"order-fulfillment/internal/domain/allocation"
	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"

	"github.com/google/uuid"
)

type Warehouse struct {
	Location string
	Coord    geo.Coordinate
}

// Warehouse sites used by the default seed fixture.
var (
	LosAngeles = Warehouse{Location: "Los Angeles", Coord: geo.NewCoordinate(33.9425, -118.408056)}
	NewYork    = Warehouse{Location: "New York", Coord: geo.NewCoordinate(40.639722, -73.778889)}
	SaoPaulo   = Warehouse{Location: "São Paulo", Coord: geo.NewCoordinate(-23.435556, -46.473056)}
	Paris      = Warehouse{Location: "Paris", Coord: geo.NewCoordinate(49.009722, 2.547778)}
	Warsaw     = Warehouse{Location: "Warsaw", Coord: geo.NewCoordinate(52.165833, 20.967222)}
	HongKong   = Warehouse{Location: "Hong Kong", Coord: geo.NewCoordinate(22.308889, 113.914444)}
)

// Delivery points used across scenarios.
var (
	Chicago = geo.NewCoordinate(41.8781, -87.6298)
	Taipei  = geo.NewCoordinate(25.0330, 121.5654)
)

type DeviceBuilder struct {
	ID           uuid.UUID
	Name         string
	UnitPrice    float64
	UnitWeightKg float64
}

func NewDeviceBuilder() *DeviceBuilder {
	return &DeviceBuilder{
		ID:           uuid.New(),
		Name:         "Test Device",
		UnitPrice:    150,
		UnitWeightKg: 0.365,
	}
}

func (b *DeviceBuilder) WithUnitPrice(price float64) *DeviceBuilder {
	b.UnitPrice = price
	return b
}

func (b *DeviceBuilder) WithUnitWeight(kg float64) *DeviceBuilder {
	b.UnitWeightKg = kg
	return b
}

func (b *DeviceBuilder) BuildDomain() device.Device {
	return device.Reconstruct(b.ID, b.Name, b.UnitPrice, b.UnitWeightKg)
}

type InventoryBuilder struct {
	ID        uuid.UUID
	Warehouse Warehouse
	Stock     int
	DeviceID  uuid.UUID
}

func NewInventoryBuilder(deviceID uuid.UUID) *InventoryBuilder {
	return &InventoryBuilder{
		ID:        uuid.New(),
		Warehouse: NewYork,
		Stock:     500,
		DeviceID:  deviceID,
	}
}

func (b *InventoryBuilder) At(w Warehouse) *InventoryBuilder {
	b.Warehouse = w
	return b
}

func (b *InventoryBuilder) WithStock(stock int) *InventoryBuilder {
	b.Stock = stock
	return b
}

func (b *InventoryBuilder) WithDevice(id uuid.UUID) *InventoryBuilder {
	b.DeviceID = id
	return b
}

func (b *InventoryBuilder) BuildDomain() inventory.Record {
	return inventory.Reconstruct(b.ID, b.Warehouse.Location, b.Warehouse.Coord, b.Stock, b.DeviceID)
}

// Warehouses builds one record per site, each holding stock units of deviceID.
func Warehouses(deviceID uuid.UUID, stock int, sites ...Warehouse) []inventory.Record {
	out := make([]inventory.Record, len(sites))
	for i, w := range sites {
		out[i] = NewInventoryBuilder(deviceID).At(w).WithStock(stock).BuildDomain()
	}
	return out
}

func Lookup(devices ...device.Device) allocation.DeviceLookup {
	byID := make(map[uuid.UUID]device.Device, len(devices))
	for _, d := range devices {
		byID[d.ID()] = d
	}
	return func(id uuid.UUID) (device.Device, bool) {
		d, ok := byID[id]
		return d, ok
	}
}
