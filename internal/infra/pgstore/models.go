package pgstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Devices struct {
	ID           uuid.UUID
	Name         string
	UnitPrice    decimal.Decimal
	UnitWeightKg decimal.Decimal
	CreatedAt    pgtype.Timestamptz
}

type Inventories struct {
	ID        uuid.UUID
	Location  string
	Latitude  float64
	Longitude float64
	Stock     int32
	DeviceID  uuid.UUID
	CreatedAt pgtype.Timestamptz
}

type Orders struct {
	ID           uuid.UUID
	DeviceCount  int32
	CoordinateX  decimal.Decimal
	CoordinateY  decimal.Decimal
	Price        decimal.Decimal
	Discount     decimal.Decimal
	ShippingCost decimal.Decimal
	FinalTotal   decimal.Decimal
	Validity     bool
	Reason       pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

type OrderItems struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	InventoryID uuid.UUID
	LineNo      int32
	Quantity    int32
}
