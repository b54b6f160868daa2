package quote

import (
	"math"

	"order-fulfillment/internal/domain/allocation"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/domain/pricing"
)

const (
	ReasonNoInventory       = "no inventory available"
	ReasonNotEnoughStock    = "not enough inventory to fulfill the order"
	ReasonShippingThreshold = "shipping cost exceeds threshold"
)

// Quote is the priced verdict for one request. It is computed per request and never stored as is.
type Quote struct {
	DeviceCount  int
	Destination  geo.Coordinate
	Price        float64
	Discount     float64
	ShippingCost float64
	FinalTotal   float64
	Valid        bool
	Reason       string
	Lines        []allocation.Line
}

func Validate(res allocation.Result, requestedQty int, dest geo.Coordinate, policy pricing.Policy) Quote {
	q := Quote{
		DeviceCount: requestedQty,
		Destination: dest,
	}

	if res.NoInventory {
		q.Reason = ReasonNoInventory
		return q
	}

	q.Lines = res.Lines
	q.Price = res.TotalDevicePrice
	q.ShippingCost = res.TotalShipping

	if res.Unallocated > 0 {
		q.Reason = ReasonNotEnoughStock
		q.FinalTotal = res.TotalDevicePrice + res.TotalShipping
		return q
	}

	q.Discount = policy.Discount(requestedQty, res.TotalDevicePrice)
	discounted := res.TotalDevicePrice - q.Discount

	q.Valid = res.TotalShipping <= policy.ShippingLimit(discounted)
	if !q.Valid {
		q.Reason = ReasonShippingThreshold
	}
	q.FinalTotal = roundCents(discounted + res.TotalShipping)

	return q
}

// Draft converts the quote into a persistable order snapshot.
func (q Quote) Draft() (*order.Draft, error) {
	amounts := order.Amounts{
		Price:        q.Price,
		Discount:     q.Discount,
		ShippingCost: q.ShippingCost,
		FinalTotal:   q.FinalTotal,
	}
	if !q.Valid {
		return order.NewInvalidDraft(q.DeviceCount, q.Destination, amounts, q.Reason)
	}

	lines := make([]order.Line, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = order.Line{InventoryID: l.InventoryID, Quantity: l.Quantity}
	}
	return order.NewValidDraft(q.DeviceCount, q.Destination, amounts, lines)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
