package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, device_count, coordinate_x, coordinate_y, price, discount, shipping_cost, final_total, validity, reason, created_at`

const createOrder = `
INSERT INTO orders (device_count, coordinate_x, coordinate_y, price, discount, shipping_cost, final_total, validity, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + orderColumns

type CreateOrderParams struct {
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

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) (Orders, error) {
	row := db.QueryRow(ctx, createOrder,
		arg.DeviceCount,
		arg.CoordinateX,
		arg.CoordinateY,
		arg.Price,
		arg.Discount,
		arg.ShippingCost,
		arg.FinalTotal,
		arg.Validity,
		arg.Reason,
		arg.CreatedAt,
	)
	return scanOrder(row)
}

const orderItemColumns = `id, order_id, inventory_id, line_no, quantity`

const createOrderItem = `
INSERT INTO order_items (order_id, inventory_id, line_no, quantity)
VALUES ($1, $2, $3, $4)
RETURNING ` + orderItemColumns

type CreateOrderItemParams struct {
	OrderID     uuid.UUID
	InventoryID uuid.UUID
	LineNo      int32
	Quantity    int32
}

func (q *Queries) CreateOrderItem(ctx context.Context, db DBTX, arg CreateOrderItemParams) (OrderItems, error) {
	row := db.QueryRow(ctx, createOrderItem, arg.OrderID, arg.InventoryID, arg.LineNo, arg.Quantity)
	return scanOrderItem(row)
}

const getOrderByID = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByID, id))
}

const listOrders = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListOrders(ctx context.Context, db DBTX) ([]Orders, error) {
	rows, err := db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}

const listOrderItemsByOrderIDs = `
SELECT ` + orderItemColumns + `
FROM order_items
WHERE order_id = ANY($1::uuid[])
ORDER BY order_id, line_no
`

func (q *Queries) ListOrderItemsByOrderIDs(ctx context.Context, db DBTX, orderIDs []pgtype.UUID) ([]OrderItems, error) {
	rows, err := db.Query(ctx, listOrderItemsByOrderIDs, orderIDs)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrderItem)
}

const resetAll = `TRUNCATE order_items, orders, inventories, devices`

func (q *Queries) ResetAll(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, resetAll)
	return err
}

func scanOrder(row rowScanner) (Orders, error) {
	var o Orders
	err := row.Scan(
		&o.ID,
		&o.DeviceCount,
		&o.CoordinateX,
		&o.CoordinateY,
		&o.Price,
		&o.Discount,
		&o.ShippingCost,
		&o.FinalTotal,
		&o.Validity,
		&o.Reason,
		&o.CreatedAt,
	)
	return o, err
}

func scanOrderItem(row rowScanner) (OrderItems, error) {
	var i OrderItems
	err := row.Scan(&i.ID, &i.OrderID, &i.InventoryID, &i.LineNo, &i.Quantity)
	return i, err
}
