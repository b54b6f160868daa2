//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/infra/readstore"
	readstoremock "order-fulfillment/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// InventoryReadStore Tests
// =============================================================================

func TestInventoryReadStore_ListAvailable(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	t.Run("success: rows mapped in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
		store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})

		rows := []pgstore.Inventories{
			{ID: uuid.New(), Location: "Los Angeles", Latitude: 33.9425, Longitude: -118.408056, Stock: 355, DeviceID: deviceID},
			{ID: uuid.New(), Location: "New York", Latitude: 40.639722, Longitude: -73.778889, Stock: 578, DeviceID: deviceID},
		}
		mockQueries.EXPECT().ListAvailableInventories(ctx, gomock.Any()).Return(rows, nil)

		records, err := store.ListAvailable(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, rows[0].ID, records[0].ID())
		assert.Equal(t, "Los Angeles", records[0].Location())
		assert.Equal(t, 355, records[0].Stock())
		assert.Equal(t, 33.9425, records[0].Coordinate().Lat)
		assert.Equal(t, -118.408056, records[0].Coordinate().Lon)
		assert.Equal(t, deviceID, records[1].DeviceID())
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockInventoryReadQueries(ctrl)
		store := readstore.NewInventoryReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListAvailableInventories(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		records, err := store.ListAvailable(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, records)
	})
}

// =============================================================================
// DeviceReadStore Tests
// =============================================================================

func TestDeviceReadStore_FindByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("success: ids passed as uuid array and prices decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDeviceReadQueries(ctrl)
		store := readstore.NewDeviceReadStore(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().
			GetDevicesByIDs(ctx, gomock.Any(), []pgtype.UUID{{Bytes: id, Valid: true}}).
			Return([]pgstore.Devices{{
				ID:           id,
				Name:         "SCOS Station P1 Pro",
				UnitPrice:    decimal.RequireFromString("150.00"),
				UnitWeightKg: decimal.RequireFromString("0.365"),
			}}, nil)

		devices, err := store.FindByIDs(ctx, []uuid.UUID{id})
		require.NoError(t, err)
		require.Len(t, devices, 1)
		assert.Equal(t, id, devices[0].ID())
		assert.Equal(t, 150.0, devices[0].UnitPrice())
		assert.Equal(t, 0.365, devices[0].UnitWeightKg())
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDeviceReadQueries(ctrl)
		store := readstore.NewDeviceReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetDevicesByIDs(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindByIDs(ctx, []uuid.UUID{uuid.New()})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// OrderReadStore Tests
// =============================================================================

func orderRow(id uuid.UUID, valid bool, createdAt time.Time) pgstore.Orders {
	row := pgstore.Orders{
		ID:           id,
		DeviceCount:  100,
		CoordinateX:  decimal.RequireFromString("40.000000"),
		CoordinateY:  decimal.RequireFromString("-73.000000"),
		Price:        decimal.RequireFromString("15000.00"),
		Discount:     decimal.RequireFromString("2250.00"),
		ShippingCost: decimal.RequireFromString("35.43"),
		FinalTotal:   decimal.RequireFromString("12785.43"),
		Validity:     valid,
		CreatedAt:    pgtype.Timestamptz{Time: createdAt, Valid: true},
	}
	if !valid {
		row.Reason = pgtype.Text{String: "shipping cost exceeds threshold", Valid: true}
	}
	return row
}

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockOrderReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectItems   int
	}{
		{
			name: "success: order with items",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(orderRow(orderID, true, time.Now()), nil)
				mock.EXPECT().ListOrderItemsByOrderIDs(ctx, gomock.Any(), gomock.Any()).Return([]pgstore.OrderItems{
					{ID: uuid.New(), OrderID: orderID, InventoryID: uuid.New(), LineNo: 0, Quantity: 60},
					{ID: uuid.New(), OrderID: orderID, InventoryID: uuid.New(), LineNo: 1, Quantity: 40},
				}, nil)
			},
			expectItems: 2,
		},
		{
			name: "success: invalid order has no items",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(orderRow(orderID, false, time.Now()), nil)
				mock.EXPECT().ListOrderItemsByOrderIDs(ctx, gomock.Any(), gomock.Any()).Return([]pgstore.OrderItems{}, nil)
			},
			expectItems: 0,
		},
		{
			name: "error: order not found",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(pgstore.Orders{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(pgstore.Orders{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: items query fails",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(orderRow(orderID, true, time.Now()), nil)
				mock.EXPECT().ListOrderItemsByOrderIDs(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
			store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, orderID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}

			require.NoError(t, actualError)
			require.NotNil(t, result)
			assert.Equal(t, orderID, result.ID)
			assert.Len(t, result.Items, tc.expectItems)
			assert.NotNil(t, result.Items)
			assert.Equal(t, 40.0, result.CoordinateX)
			assert.Equal(t, -73.0, result.CoordinateY)
			assert.Equal(t, "12785.43", result.FinalTotal.StringFixed(2))
			if result.Validity {
				assert.Nil(t, result.Reason)
			} else {
				require.NotNil(t, result.Reason)
				assert.Equal(t, "shipping cost exceeds threshold", *result.Reason)
			}
		})
	}
}

func TestOrderReadStore_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: items grouped under their orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

		newer, older := uuid.New(), uuid.New()
		now := time.Now()
		mockQueries.EXPECT().ListOrders(ctx, gomock.Any()).Return([]pgstore.Orders{
			orderRow(newer, true, now),
			orderRow(older, false, now.Add(-time.Minute)),
		}, nil)
		mockQueries.EXPECT().
			ListOrderItemsByOrderIDs(ctx, gomock.Any(), []pgtype.UUID{{Bytes: newer, Valid: true}, {Bytes: older, Valid: true}}).
			Return([]pgstore.OrderItems{{ID: uuid.New(), OrderID: newer, InventoryID: uuid.New(), Quantity: 100}}, nil)

		views, err := store.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, newer, views[0].ID)
		assert.Len(t, views[0].Items, 1)
		assert.Equal(t, 100, views[0].Items[0].Quantity)
		assert.Equal(t, older, views[1].ID)
		assert.Empty(t, views[1].Items)
	})

	t.Run("success: no orders skips the items query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListOrders(ctx, gomock.Any()).Return([]pgstore.Orders{}, nil)

		views, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListOrders(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindAll(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Test helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
