package queries

import (
	"context"
	"time"

	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/domain/quote"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound  = errs.ErrOrderNotFound
	ErrDeviceNotFound = errs.ErrDeviceNotFound
)

// Read models (DTO for read side)
type OrderView struct {
	ID           uuid.UUID
	DeviceCount  int
	CoordinateX  float64
	CoordinateY  float64
	Price        decimal.Decimal
	Discount     decimal.Decimal
	ShippingCost decimal.Decimal
	FinalTotal   decimal.Decimal
	Validity     bool
	Reason       *string
	Items        []OrderItemView
	CreatedAt    time.Time
}

type OrderItemView struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	Quantity    int
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindAll(ctx context.Context) ([]*OrderView, error)
}

type InventoryReadStore interface {
	ListAvailable(ctx context.Context) ([]inventory.Record, error)
}

type DeviceReadStore interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]device.Device, error)
}

type QuoteRecorder interface {
	RecordQuote(valid bool)
}

type VerifyParams struct {
	DeviceCount int
	Destination geo.Coordinate
}

type OrderQueries interface {
	Verify(ctx context.Context, params VerifyParams) (*quote.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	orders  OrderReadStore
	quoter  *Quoter
	metrics QuoteRecorder
}

func NewOrderQueries(orders OrderReadStore, quoter *Quoter, metrics QuoteRecorder) OrderQueries {
	return &orderQueriesImpl{
		orders:  orders,
		quoter:  quoter,
		metrics: metrics,
	}
}

// Verify prices a request against current stock without writing anything.
func (q *orderQueriesImpl) Verify(ctx context.Context, params VerifyParams) (*quote.Quote, error) {
	qt, err := q.quoter.Quote(ctx, params.DeviceCount, params.Destination)
	if err != nil {
		return nil, err
	}
	q.metrics.RecordQuote(qt.Valid)
	return qt, nil
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	o, err := q.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	return q.orders.FindAll(ctx)
}
