package repository

import (
	"context"
	"time"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const coordinatePlaces = 6

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateOrderParams) (pgstore.Orders, error)
	CreateOrderItem(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateOrderItemParams) (pgstore.OrderItems, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      pgstore.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db pgstore.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, draft *order.Draft, createdAt time.Time) (uuid.UUID, error) {
	row, err := r.queries.CreateOrder(ctx, r.db, toCreateOrderParams(draft, createdAt))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return row.ID, nil
}

func (r *OrderRepository) CreateItem(ctx context.Context, orderID uuid.UUID, lineNo int, line order.Line) error {
	_, err := r.queries.CreateOrderItem(ctx, r.db, pgstore.CreateOrderItemParams{
		OrderID:     orderID,
		InventoryID: line.InventoryID,
		LineNo:      int32(lineNo),        // #nosec G115 -- one line per warehouse
		Quantity:    int32(line.Quantity), // #nosec G115 -- bounded by stored stock
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order item", err)
	}
	return nil
}

func toCreateOrderParams(draft *order.Draft, createdAt time.Time) pgstore.CreateOrderParams {
	dest := draft.Destination()
	return pgstore.CreateOrderParams{
		DeviceCount:  int32(draft.DeviceCount()), // #nosec G115 -- capped at order.MaxDeviceCount
		CoordinateX:  decimal.NewFromFloat(dest.Lat).Round(coordinatePlaces),
		CoordinateY:  decimal.NewFromFloat(dest.Lon).Round(coordinatePlaces),
		Price:        draft.Price(),
		Discount:     draft.Discount(),
		ShippingCost: draft.ShippingCost(),
		FinalTotal:   draft.FinalTotal(),
		Validity:     draft.Valid(),
		Reason:       pgconv.StringPtrToPgtype(draft.Reason()),
		CreatedAt:    pgconv.TimeToPgtype(createdAt),
	}
}
