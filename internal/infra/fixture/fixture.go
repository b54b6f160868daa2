// Package fixture loads device and warehouse reference data from YAML and writes it to the store.
package fixture

import (
	"context"
	"fmt"
	"os"

	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Devices []Device `yaml:"devices"`
}

type Device struct {
	Name         string      `yaml:"name"`
	UnitPrice    float64     `yaml:"unit_price"`
	UnitWeightKg float64     `yaml:"unit_weight_kg"`
	Warehouses   []Warehouse `yaml:"warehouses"`
}

type Warehouse struct {
	Location  string  `yaml:"location"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Stock     int32   `yaml:"stock"`
}

// Seeded holds the ids assigned by the database, keyed by device name and warehouse location.
type Seeded struct {
	Devices     map[string]uuid.UUID
	Inventories map[string]uuid.UUID
}

type Writer interface {
	CreateDevice(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateDeviceParams) (pgstore.Devices, error)
	CreateInventory(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateInventoryParams) (pgstore.Inventories, error)
}

func Load(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

func (f Fixture) validate() error {
	if len(f.Devices) == 0 {
		return fmt.Errorf("fixture has no devices")
	}
	for _, d := range f.Devices {
		if _, err := device.NewDevice(uuid.Nil, d.Name, d.UnitPrice, d.UnitWeightKg); err != nil {
			return fmt.Errorf("device %q: %w", d.Name, err)
		}
		for _, w := range d.Warehouses {
			if w.Latitude < -90 || w.Latitude > 90 || w.Longitude < -180 || w.Longitude > 180 {
				return fmt.Errorf("warehouse %q: coordinates out of range", w.Location)
			}
			coord := geo.NewCoordinate(w.Latitude, w.Longitude)
			if _, err := inventory.NewRecord(uuid.Nil, w.Location, coord, int(w.Stock), uuid.Nil); err != nil {
				return fmt.Errorf("device %q: %w", d.Name, err)
			}
		}
	}
	return nil
}

// Apply inserts warehouses in fixture order so store order matches file order.
func Apply(ctx context.Context, w Writer, db pgstore.DBTX, f Fixture) (Seeded, error) {
	out := Seeded{
		Devices:     make(map[string]uuid.UUID, len(f.Devices)),
		Inventories: make(map[string]uuid.UUID),
	}

	for _, d := range f.Devices {
		dev, err := w.CreateDevice(ctx, db, pgstore.CreateDeviceParams{
			Name:         d.Name,
			UnitPrice:    decimal.NewFromFloat(d.UnitPrice).Round(2),
			UnitWeightKg: decimal.NewFromFloat(d.UnitWeightKg),
		})
		if err != nil {
			return Seeded{}, infra.WrapRepoErr("failed to create device "+d.Name, err)
		}
		out.Devices[d.Name] = dev.ID

		for _, wh := range d.Warehouses {
			inv, err := w.CreateInventory(ctx, db, pgstore.CreateInventoryParams{
				Location:  wh.Location,
				Latitude:  wh.Latitude,
				Longitude: wh.Longitude,
				Stock:     wh.Stock,
				DeviceID:  dev.ID,
			})
			if err != nil {
				return Seeded{}, infra.WrapRepoErr("failed to create inventory "+wh.Location, err)
			}
			out.Inventories[wh.Location] = inv.ID
		}
	}

	return out, nil
}
