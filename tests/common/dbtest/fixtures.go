//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"order-fulfillment/internal/infra/fixture"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestDeviceName = "Test Device"

// TestFixture is the reference data every e2e scenario starts from: four warehouses holding 500 units each.
func TestFixture() fixture.Fixture {
	sites := []builder.Warehouse{builder.LosAngeles, builder.NewYork, builder.SaoPaulo, builder.Paris}
	warehouses := make([]fixture.Warehouse, len(sites))
	for i, s := range sites {
		warehouses[i] = fixture.Warehouse{
			Location:  s.Location,
			Latitude:  s.Coord.Lat,
			Longitude: s.Coord.Lon,
			Stock:     500,
		}
	}
	return fixture.Fixture{
		Devices: []fixture.Device{{
			Name:         TestDeviceName,
			UnitPrice:    150,
			UnitWeightKg: 0.365,
			Warehouses:   warehouses,
		}},
	}
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) (fixture.Seeded, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return fixture.Apply(ctx, pgstore.New(), pool, TestFixture())
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) (fixture.Seeded, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fixture.Seeded{}, fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return fixture.Seeded{}, err
	}

	return SeedReferenceData(pool)
}

func StockAt(t *testing.T, db DBLike, location string) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM inventories WHERE location = $1", location).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func TotalStock(t *testing.T, db DBLike) int {
	t.Helper()

	var total int
	err := db.QueryRow(context.Background(), "SELECT COALESCE(SUM(stock), 0) FROM inventories").Scan(&total)
	require.NoError(t, err)
	return total
}

func CountOrders(t *testing.T, db DBLike, validity bool) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders WHERE validity = $1", validity).Scan(&n)
	require.NoError(t, err)
	return n
}

func SumOrderedQuantity(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COALESCE(SUM(quantity), 0) FROM order_items").Scan(&n)
	require.NoError(t, err)
	return n
}

func StoredDeviceCount(t *testing.T, db DBLike, orderID uuid.UUID) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT device_count FROM orders WHERE id = $1", orderID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SetStockAndPrice overwrites one warehouse's stock and its device's unit price.
func SetStockAndPrice(t *testing.T, db DBLike, location string, stock int, unitPrice string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE inventories SET stock = $1 WHERE location = $2", stock, location)
	require.NoError(t, err)
	_, err = db.Exec(ctx,
		"UPDATE devices SET unit_price = $1::numeric WHERE id = (SELECT device_id FROM inventories WHERE location = $2)",
		unitPrice, location)
	require.NoError(t, err)
}
