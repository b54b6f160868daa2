//go:build unit || e2e

package builder

import (
	"time"

	"order-fulfillment/internal/domain/allocation"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/quote"
	reqdto "order-fulfillment/internal/handler/dto/request"
	"order-fulfillment/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBuilder defaults to the 100-unit order near New York served entirely from the New York warehouse.
type OrderBuilder struct {
	ID          uuid.UUID
	DeviceCount int
	Destination geo.Coordinate
	InventoryID uuid.UUID
	Valid       bool
	Reason      string
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:          uuid.New(),
		DeviceCount: 100,
		Destination: geo.NewCoordinate(40, -73),
		InventoryID: uuid.New(),
		Valid:       true,
		CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) WithDeviceCount(n int) *OrderBuilder {
	b.DeviceCount = n
	return b
}

func (b *OrderBuilder) WithDestination(c geo.Coordinate) *OrderBuilder {
	b.Destination = c
	return b
}

func (b *OrderBuilder) Invalid(reason string) *OrderBuilder {
	b.Valid = false
	b.Reason = reason
	return b
}

func (b *OrderBuilder) BuildRequestDTO() reqdto.OrderRequest {
	lat, lon := b.Destination.Lat, b.Destination.Lon
	return reqdto.OrderRequest{
		DeviceCount: b.DeviceCount,
		CoordinateX: &lat,
		CoordinateY: &lon,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	v := &queries.OrderView{
		ID:           b.ID,
		DeviceCount:  b.DeviceCount,
		CoordinateX:  b.Destination.Lat,
		CoordinateY:  b.Destination.Lon,
		Price:        decimal.RequireFromString("15000.00"),
		Discount:     decimal.RequireFromString("2250.00"),
		ShippingCost: decimal.RequireFromString("35.43"),
		FinalTotal:   decimal.RequireFromString("12785.43"),
		Validity:     b.Valid,
		Items:        []queries.OrderItemView{},
		CreatedAt:    b.CreatedAt,
	}
	if b.Valid {
		v.Items = []queries.OrderItemView{
			{ID: uuid.New(), InventoryID: b.InventoryID, Quantity: b.DeviceCount},
		}
		return v
	}
	reason := b.Reason
	v.Reason = &reason
	return v
}

func (b *OrderBuilder) BuildQuote() *quote.Quote {
	q := &quote.Quote{
		DeviceCount:  b.DeviceCount,
		Destination:  b.Destination,
		Price:        15000,
		Discount:     2250,
		ShippingCost: 35.4264,
		FinalTotal:   12785.43,
		Valid:        b.Valid,
		Reason:       b.Reason,
		Lines: []allocation.Line{{
			InventoryID:  b.InventoryID,
			Location:     NewYork.Location,
			Quantity:     b.DeviceCount,
			DistanceKm:   97.06,
			ShippingCost: 35.4264,
			Price:        15000,
		}},
	}
	return q
}
