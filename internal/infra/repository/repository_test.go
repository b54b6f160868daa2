//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/infra/repository"
	repositorymock "order-fulfillment/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// DecrementStockIfSufficient Tests
// =============================================================================

func TestInventoryRepository_DecrementStockIfSufficient(t *testing.T) {
	ctx := context.Background()
	inventoryID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockInventoryWriteQueries, pgstore.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: one row updated",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().
					DecrementInventoryStock(ctx, tx, pgstore.DecrementInventoryStockParams{ID: inventoryID, Quantity: 40}).
					Return(int64(1), nil)
			},
		},
		{
			name: "error: stock below quantity updates nothing",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().DecrementInventoryStock(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindInsufficientStock,
		},
		{
			name: "error: check constraint violation",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries, tx pgstore.DBTX) {
				violation := &pgconn.PgError{Code: "23514", ConstraintName: infra.ConstraintStockNonNegative}
				mock.EXPECT().DecrementInventoryStock(ctx, tx, gomock.Any()).Return(int64(0), violation)
			},
			expectedError: true,
			expectKind:    infra.KindInsufficientStock,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries, tx pgstore.DBTX) {
				mock.EXPECT().DecrementInventoryStock(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
			tx := &mockDBTX{}
			repo := repository.NewInventoryRepository(mockQueries, tx)

			tc.setupMock(mockQueries, tx)

			err := repo.DecrementStockIfSufficient(ctx, inventoryID, 40)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				if tc.expectKind == infra.KindInsufficientStock {
					assert.Contains(t, err.Error(), inventoryID.String())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Order Repository Tests
// =============================================================================

func validDraft(t *testing.T, lines ...order.Line) *order.Draft {
	t.Helper()
	draft, err := order.NewValidDraft(100, geo.NewCoordinate(40.1234567, -73.9876543), order.Amounts{
		Price:        15000,
		Discount:     2250,
		ShippingCost: 35.42640001,
		FinalTotal:   12785.43,
	}, lines)
	require.NoError(t, err)
	return draft
}

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("success: params carry rounded money and coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, tx)

		orderID := uuid.New()
		mockQueries.EXPECT().CreateOrder(ctx, tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgstore.DBTX, arg pgstore.CreateOrderParams) (pgstore.Orders, error) {
				assert.Equal(t, int32(100), arg.DeviceCount)
				assert.Equal(t, "40.123457", arg.CoordinateX.StringFixed(6))
				assert.Equal(t, "-73.987654", arg.CoordinateY.StringFixed(6))
				assert.Equal(t, "35.43", arg.ShippingCost.StringFixed(2))
				assert.Equal(t, "12785.43", arg.FinalTotal.StringFixed(2))
				assert.True(t, arg.Validity)
				assert.False(t, arg.Reason.Valid)
				assert.Equal(t, createdAt, arg.CreatedAt.Time)
				return pgstore.Orders{ID: orderID}, nil
			})

		id, err := repo.Create(ctx, validDraft(t), createdAt)
		require.NoError(t, err)
		assert.Equal(t, orderID, id)
	})

	t.Run("success: invalid draft stores its reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, tx)

		draft, err := validDraft(t).Rejected("order commit failed")
		require.NoError(t, err)

		mockQueries.EXPECT().CreateOrder(ctx, tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgstore.DBTX, arg pgstore.CreateOrderParams) (pgstore.Orders, error) {
				assert.False(t, arg.Validity)
				assert.Equal(t, "order commit failed", arg.Reason.String)
				assert.True(t, arg.Reason.Valid)
				return pgstore.Orders{ID: uuid.New()}, nil
			})

		_, err = repo.Create(ctx, draft, createdAt)
		require.NoError(t, err)
	})

	t.Run("success: largest device count is stored unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, tx)

		draft, err := order.NewInvalidDraft(order.MaxDeviceCount, geo.NewCoordinate(0, 0), order.Amounts{}, "not enough inventory to fulfill the order")
		require.NoError(t, err)

		mockQueries.EXPECT().CreateOrder(ctx, tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgstore.DBTX, arg pgstore.CreateOrderParams) (pgstore.Orders, error) {
				assert.Equal(t, int64(order.MaxDeviceCount), int64(arg.DeviceCount))
				return pgstore.Orders{ID: uuid.New()}, nil
			})

		_, err = repo.Create(ctx, draft, createdAt)
		require.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, tx)

		mockQueries.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(pgstore.Orders{}, errors.New("database connection error"))

		id, err := repo.Create(ctx, validDraft(t), createdAt)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Equal(t, uuid.Nil, id)
	})
}

func TestOrderRepository_CreateItem(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	line := order.Line{InventoryID: uuid.New(), Quantity: 25}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, tx)

		mockQueries.EXPECT().
			CreateOrderItem(ctx, tx, pgstore.CreateOrderItemParams{OrderID: orderID, InventoryID: line.InventoryID, LineNo: 1, Quantity: 25}).
			Return(pgstore.OrderItems{ID: uuid.New()}, nil)

		assert.NoError(t, repo.CreateItem(ctx, orderID, 1, line))
	})

	t.Run("error: unknown inventory violates foreign key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, tx)

		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mockQueries.EXPECT().CreateOrderItem(ctx, tx, gomock.Any()).Return(pgstore.OrderItems{}, fk)

		err := repo.CreateItem(ctx, orderID, 0, line)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use query mocks instead.")
}
