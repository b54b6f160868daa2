//go:build unit

package quote_test

import (
	"testing"

	"order-fulfillment/internal/domain/allocation"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/domain/pricing"
	"order-fulfillment/internal/domain/quote"
	"order-fulfillment/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteFor(t *testing.T, qty int, dest geo.Coordinate, records []inventory.Record) quote.Quote {
	t.Helper()
	policy := pricing.DefaultPolicy()
	dev := builder.NewDeviceBuilder().BuildDomain()
	for i, r := range records {
		records[i] = inventory.Reconstruct(r.ID(), r.Location(), r.Coordinate(), r.Stock(), dev.ID())
	}
	res, err := allocation.Allocate(qty, dest, records, builder.Lookup(dev), policy)
	require.NoError(t, err)
	return quote.Validate(res, qty, dest, policy)
}

func seedSites() []inventory.Record {
	return builder.Warehouses(builder.NewDeviceBuilder().ID, 500,
		builder.LosAngeles, builder.NewYork, builder.SaoPaulo, builder.Paris)
}

func TestValidate(t *testing.T) {
	t.Run("valid order with tier discount", func(t *testing.T) {
		q := quoteFor(t, 100, geo.NewCoordinate(40, -73), seedSites())

		assert.True(t, q.Valid)
		assert.Empty(t, q.Reason)
		assert.InDelta(t, 15000.0, q.Price, 1e-9)
		assert.InDelta(t, 2250.0, q.Discount, 1e-9)
		assert.InDelta(t, 35.4264, q.ShippingCost, 1e-3)
		assert.InDelta(t, 12785.43, q.FinalTotal, 1e-9)
		assert.Len(t, q.Lines, 1)
	})

	t.Run("large order spanning two warehouses", func(t *testing.T) {
		q := quoteFor(t, 1000, builder.Chicago, seedSites())

		assert.True(t, q.Valid)
		assert.InDelta(t, 150000.0, q.Price, 1e-9)
		assert.InDelta(t, 30000.0, q.Discount, 1e-9)
		assert.InDelta(t, 127277.51, q.FinalTotal, 1e-9)
		assert.Len(t, q.Lines, 2)
	})

	t.Run("shipping above threshold is invalid but priced", func(t *testing.T) {
		q := quoteFor(t, 10, builder.Taipei, seedSites())

		assert.False(t, q.Valid)
		assert.Equal(t, quote.ReasonShippingThreshold, q.Reason)
		assert.InDelta(t, 1500.0, q.Price, 1e-9)
		assert.Zero(t, q.Discount)
		assert.InDelta(t, 358.04, q.ShippingCost, 1e-2)
		assert.InDelta(t, 1858.04, q.FinalTotal, 1e-2)
	})

	t.Run("shipping just under threshold is valid", func(t *testing.T) {
		records := []inventory.Record{
			builder.NewInventoryBuilder(builder.NewDeviceBuilder().ID).At(builder.Paris).WithStock(10).BuildDomain(),
		}
		q := quoteFor(t, 5, geo.NewCoordinate(0, 0), records)

		assert.True(t, q.Valid)
		assert.InDelta(t, 99.5556, q.ShippingCost, 1e-3)
		assert.LessOrEqual(t, q.ShippingCost, 750*0.15)
		assert.InDelta(t, 849.56, q.FinalTotal, 1e-9)
	})

	t.Run("not enough stock skips the discount", func(t *testing.T) {
		q := quoteFor(t, 999999, geo.NewCoordinate(-87.6298, 41.8781), seedSites())

		assert.False(t, q.Valid)
		assert.Equal(t, quote.ReasonNotEnoughStock, q.Reason)
		assert.InDelta(t, 300000.0, q.Price, 1e-9)
		assert.Zero(t, q.Discount)
		assert.InDelta(t, 93647.07, q.ShippingCost, 1e-2)
		assert.InDelta(t, q.Price+q.ShippingCost, q.FinalTotal, 1e-9)
	})

	t.Run("no inventory yields zero amounts", func(t *testing.T) {
		q := quoteFor(t, 3, builder.Chicago, nil)

		assert.False(t, q.Valid)
		assert.Equal(t, quote.ReasonNoInventory, q.Reason)
		assert.Zero(t, q.Price)
		assert.Zero(t, q.ShippingCost)
		assert.Zero(t, q.FinalTotal)
		assert.Empty(t, q.Lines)
		assert.Equal(t, 3, q.DeviceCount)
	})
}

func TestQuote_Draft(t *testing.T) {
	t.Run("valid quote keeps its lines and rounds money", func(t *testing.T) {
		q := quoteFor(t, 1000, builder.Chicago, seedSites())

		draft, err := q.Draft()
		require.NoError(t, err)

		assert.True(t, draft.Valid())
		assert.Nil(t, draft.Reason())
		require.Len(t, draft.Lines(), 2)
		assert.Equal(t, q.Lines[0].InventoryID, draft.Lines()[0].InventoryID)
		assert.Equal(t, 500, draft.Lines()[0].Quantity)
		assert.True(t, decimal.RequireFromString("127277.51").Equal(draft.FinalTotal()), draft.FinalTotal().String())
		assert.True(t, decimal.RequireFromString("7277.51").Equal(draft.ShippingCost()), draft.ShippingCost().String())
	})

	t.Run("invalid quote carries the reason and no lines", func(t *testing.T) {
		q := quoteFor(t, 10, builder.Taipei, seedSites())

		draft, err := q.Draft()
		require.NoError(t, err)

		assert.False(t, draft.Valid())
		require.NotNil(t, draft.Reason())
		assert.Equal(t, quote.ReasonShippingThreshold, *draft.Reason())
		assert.Empty(t, draft.Lines())
	})

	t.Run("rejected draft keeps amounts", func(t *testing.T) {
		q := quoteFor(t, 100, geo.NewCoordinate(40, -73), seedSites())
		draft, err := q.Draft()
		require.NoError(t, err)

		rejected, err := draft.Rejected("order commit failed")
		require.NoError(t, err)

		assert.False(t, rejected.Valid())
		assert.Empty(t, rejected.Lines())
		assert.True(t, draft.FinalTotal().Equal(rejected.FinalTotal()))
		assert.True(t, draft.Valid())
	})
}
