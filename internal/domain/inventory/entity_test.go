//go:build unit

package inventory_test

import (
	"testing"

	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	nyc := geo.Coordinate{Lat: 40.639722, Lon: -73.778889}

	t.Run("valid record", func(t *testing.T) {
		id, deviceID := uuid.New(), uuid.New()
		r, err := inventory.NewRecord(id, " New York ", nyc, 578, deviceID)
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
		assert.Equal(t, "New York", r.Location())
		assert.Equal(t, nyc, r.Coordinate())
		assert.Equal(t, 578, r.Stock())
		assert.Equal(t, deviceID, r.DeviceID())
	})

	t.Run("empty location", func(t *testing.T) {
		_, err := inventory.NewRecord(uuid.New(), "", nyc, 1, uuid.New())
		assert.ErrorIs(t, err, inventory.ErrEmptyLocation)
	})

	t.Run("negative stock", func(t *testing.T) {
		_, err := inventory.NewRecord(uuid.New(), "New York", nyc, -1, uuid.New())
		assert.ErrorIs(t, err, inventory.ErrNegativeStock)
	})
}
