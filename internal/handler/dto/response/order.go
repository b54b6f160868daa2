package response

import (
	"time"

	"order-fulfillment/internal/domain/quote"
	"order-fulfillment/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	InventoryID uuid.UUID `json:"inventoryId"`
	Quantity    int       `json:"quantity"`
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	DeviceCount  int                 `json:"deviceCount"`
	CoordinateX  float64             `json:"coordinateX"`
	CoordinateY  float64             `json:"coordinateY"`
	Price        float64             `json:"price"`
	Discount     float64             `json:"discount"`
	ShippingCost float64             `json:"shippingCost"`
	FinalTotal   float64             `json:"finalTotal"`
	Validity     bool                `json:"validity"`
	Reason       *string             `json:"reason"`
	OrderItems   []OrderItemResponse `json:"orderItems"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type QuoteItemResponse struct {
	InventoryID  uuid.UUID `json:"inventoryId"`
	Location     string    `json:"location"`
	Quantity     int       `json:"quantity"`
	Distance     float64   `json:"distance"`
	ShippingCost float64   `json:"shippingCost"`
}

type OrderQuoteResponse struct {
	DeviceCount  int                 `json:"deviceCount"`
	CoordinateX  float64             `json:"coordinateX"`
	CoordinateY  float64             `json:"coordinateY"`
	Price        float64             `json:"price"`
	Discount     float64             `json:"discount"`
	ShippingCost float64             `json:"shippingCost"`
	FinalTotal   float64             `json:"finalTotal"`
	Validity     bool                `json:"validity"`
	Reason       *string             `json:"reason"`
	OrderItems   []QuoteItemResponse `json:"orderItems"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	items := []OrderItemResponse{}
	if err := copier.Copy(&items, &v.Items); err != nil {
		return nil, err
	}
	return &OrderResponse{
		ID:           v.ID,
		DeviceCount:  v.DeviceCount,
		CoordinateX:  v.CoordinateX,
		CoordinateY:  v.CoordinateY,
		Price:        money(v.Price),
		Discount:     money(v.Discount),
		ShippingCost: money(v.ShippingCost),
		FinalTotal:   money(v.FinalTotal),
		Validity:     v.Validity,
		Reason:       v.Reason,
		OrderItems:   items,
		CreatedAt:    v.CreatedAt,
	}, nil
}

func FromOrderViews(views []*queries.OrderView) ([]*OrderResponse, error) {
	out := make([]*OrderResponse, len(views))
	for i, v := range views {
		r, err := FromOrderView(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func FromQuote(q *quote.Quote) *OrderQuoteResponse {
	items := make([]QuoteItemResponse, len(q.Lines))
	for i, l := range q.Lines {
		items[i] = QuoteItemResponse{
			InventoryID:  l.InventoryID,
			Location:     l.Location,
			Quantity:     l.Quantity,
			Distance:     l.DistanceKm,
			ShippingCost: l.ShippingCost,
		}
	}

	var reason *string
	if !q.Valid {
		r := q.Reason
		reason = &r
	}

	return &OrderQuoteResponse{
		DeviceCount:  q.DeviceCount,
		CoordinateX:  q.Destination.Lat,
		CoordinateY:  q.Destination.Lon,
		Price:        q.Price,
		Discount:     q.Discount,
		ShippingCost: q.ShippingCost,
		FinalTotal:   q.FinalTotal,
		Validity:     q.Valid,
		Reason:       reason,
		OrderItems:   items,
	}
}

func money(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
