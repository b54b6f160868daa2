package readstore

import (
	"context"

	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/pkg/pgconv"
	"order-fulfillment/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Orders, error)
	ListOrders(ctx context.Context, db pgstore.DBTX) ([]pgstore.Orders, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db pgstore.DBTX, orderIDs []pgtype.UUID) ([]pgstore.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgstore.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db pgstore.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}

	views, err := r.attachItems(ctx, []pgstore.Orders{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// FindAll returns every order, newest first.
func (r *OrderReadStore) FindAll(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrders(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	if len(rows) == 0 {
		return []*queries.OrderView{}, nil
	}
	return r.attachItems(ctx, rows)
}

func (r *OrderReadStore) attachItems(ctx context.Context, rows []pgstore.Orders) ([]*queries.OrderView, error) {
	ids := make([]pgtype.UUID, len(rows))
	for i, row := range rows {
		ids[i] = pgconv.UUIDToPgtype(row.ID)
	}

	items, err := r.queries.ListOrderItemsByOrderIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	byOrder := make(map[uuid.UUID][]queries.OrderItemView, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], queries.OrderItemView{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			Quantity:    int(it.Quantity),
		})
	}

	views := make([]*queries.OrderView, len(rows))
	for i, row := range rows {
		views[i] = toOrderView(row, byOrder[row.ID])
	}
	return views, nil
}

func toOrderView(row pgstore.Orders, items []queries.OrderItemView) *queries.OrderView {
	if items == nil {
		items = []queries.OrderItemView{}
	}
	x, _ := row.CoordinateX.Float64()
	y, _ := row.CoordinateY.Float64()

	return &queries.OrderView{
		ID:           row.ID,
		DeviceCount:  int(row.DeviceCount),
		CoordinateX:  x,
		CoordinateY:  y,
		Price:        row.Price,
		Discount:     row.Discount,
		ShippingCost: row.ShippingCost,
		FinalTotal:   row.FinalTotal,
		Validity:     row.Validity,
		Reason:       pgconv.StringPtrFromPgtype(row.Reason),
		Items:        items,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
