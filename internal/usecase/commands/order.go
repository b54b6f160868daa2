package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/domain/quote"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/clock"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/queries"
	"order-fulfillment/internal/usecase/shared"

	"github.com/google/uuid"
)

const ReasonCommitFailed = "order commit failed"

// Metric labels for invalid orders. Free-form reasons stay in logs and rows.
const (
	LabelNoInventory        = "no_inventory"
	LabelNotEnoughStock     = "not_enough_stock"
	LabelShippingThreshold  = "shipping_threshold"
	LabelInsufficientStock  = "insufficient_stock"
	LabelCommitFailed       = "commit_failed"
	labelUnclassifiedReason = "other"
)

var (
	ErrDeviceNotFound = queries.ErrDeviceNotFound
	ErrInvalidQuote   = errs.New("quote could not be turned into an order")
)

type PlaceParams struct {
	DeviceCount int
	Destination geo.Coordinate
}

type OrderRecorder interface {
	RecordOrderPlaced(valid bool, reason string)
	RecordCommitConflict()
}

type OrderCommands interface {
	Place(ctx context.Context, params PlaceParams) (*queries.OrderView, error)
}

// CommitOutcome is the result of the stock commit transaction.
// Exactly one of Order and Conflict is set.
type CommitOutcome struct {
	Order    *queries.OrderView
	Conflict *CommitConflict
}

type CommitConflict struct {
	Reason string
	Label  string
	Cause  error
}

type orderUseCaseImpl struct {
	uow     shared.UnitOfWork
	quoter  *queries.Quoter
	clock   clock.Clock
	metrics OrderRecorder
}

func NewOrderUseCase(uow shared.UnitOfWork, quoter *queries.Quoter, clk clock.Clock, metrics OrderRecorder) OrderCommands {
	return &orderUseCaseImpl{
		uow:     uow,
		quoter:  quoter,
		clock:   clk,
		metrics: metrics,
	}
}

// Place always persists an order when the quote could be computed. Orders that
// fail validation or lose the stock race are stored as invalid with a reason.
func (uc *orderUseCaseImpl) Place(ctx context.Context, params PlaceParams) (*queries.OrderView, error) {
	qt, err := uc.quoter.Quote(ctx, params.DeviceCount, params.Destination)
	if err != nil {
		return nil, err
	}

	draft, err := qt.Draft()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuote)
	}

	if !draft.Valid() {
		return uc.persistInvalid(ctx, draft, quoteReasonLabel(qt.Reason))
	}

	outcome := uc.commit(ctx, draft)
	if outcome.Conflict == nil {
		uc.metrics.RecordOrderPlaced(true, "")
		return outcome.Order, nil
	}

	uc.metrics.RecordCommitConflict()
	slog.WarnContext(ctx, "order commit failed, storing invalid order",
		"reason", outcome.Conflict.Reason,
		"error", outcome.Conflict.Cause.Error(),
	)

	rejected, err := draft.Rejected(outcome.Conflict.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuote)
	}
	return uc.persistInvalid(ctx, rejected, outcome.Conflict.Label)
}

func (uc *orderUseCaseImpl) commit(ctx context.Context, draft *order.Draft) CommitOutcome {
	var (
		view   *queries.OrderView
		failed uuid.UUID
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		failed = uuid.Nil
		for _, line := range draft.Lines() {
			if err := tx.Inventories().DecrementStockIfSufficient(ctx, line.InventoryID, line.Quantity); err != nil {
				failed = line.InventoryID
				return err
			}
		}

		id, err := uc.createOrder(ctx, tx, draft)
		if err != nil {
			return err
		}

		view, err = tx.OrderReads().FindByID(ctx, id)
		return err
	})
	if err != nil {
		reason, label := conflictReason(err, failed)
		return CommitOutcome{Conflict: &CommitConflict{Reason: reason, Label: label, Cause: err}}
	}
	return CommitOutcome{Order: view}
}

func (uc *orderUseCaseImpl) persistInvalid(ctx context.Context, draft *order.Draft, label string) (*queries.OrderView, error) {
	var view *queries.OrderView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := uc.createOrder(ctx, tx, draft)
		if err != nil {
			return err
		}
		view, err = tx.OrderReads().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "persist invalid order")
	}

	uc.metrics.RecordOrderPlaced(false, label)
	return view, nil
}

func (uc *orderUseCaseImpl) createOrder(ctx context.Context, tx shared.Tx, draft *order.Draft) (uuid.UUID, error) {
	id, err := tx.Orders().Create(ctx, draft, uc.clock.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return uuid.Nil, err
	}
	for i, line := range draft.Lines() {
		if err := tx.Orders().CreateItem(ctx, id, i, line); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

func conflictReason(err error, inventoryID uuid.UUID) (reason, label string) {
	if infra.IsKind(err, infra.KindInsufficientStock) && inventoryID != uuid.Nil {
		return fmt.Sprintf("insufficient stock for inventory %s", inventoryID), LabelInsufficientStock
	}
	return ReasonCommitFailed, LabelCommitFailed
}

func quoteReasonLabel(reason string) string {
	switch reason {
	case quote.ReasonNoInventory:
		return LabelNoInventory
	case quote.ReasonNotEnoughStock:
		return LabelNotEnoughStock
	case quote.ReasonShippingThreshold:
		return LabelShippingThreshold
	default:
		return labelUnclassifiedReason
	}
}
