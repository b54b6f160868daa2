// Command seed loads device and warehouse reference data from a YAML fixture.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"order-fulfillment/internal/handler/middleware"
	"order-fulfillment/internal/infra/db"
	"order-fulfillment/internal/infra/fixture"
	"order-fulfillment/internal/infra/pgstore"
	"order-fulfillment/internal/pkg/config"

	"github.com/jackc/pgx/v5"
)

var (
	fixturePath = flag.String("fixture", "fixtures/warehouses.yaml", "Path to the YAML fixture")
	reset       = flag.Bool("reset", false, "Truncate orders, inventories and devices before seeding")
	resetOnly   = flag.Bool("reset-only", false, "Truncate all tables and exit without seeding")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadToolConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(logger, cfg); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config.ToolConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var f fixture.Fixture
	if !*resetOnly {
		var err error
		if f, err = fixture.Load(*fixturePath); err != nil {
			return err
		}
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := pgstore.New()
	if *reset || *resetOnly {
		if err := q.ResetAll(ctx, tx); err != nil {
			return err
		}
		logger.Info("tables truncated")
	}

	if !*resetOnly {
		seeded, err := fixture.Apply(ctx, q, tx, f)
		if err != nil {
			return err
		}
		logger.Info("fixture applied",
			"fixture", *fixturePath,
			"devices", len(seeded.Devices),
			"inventories", len(seeded.Inventories))
	}

	return tx.Commit(ctx)
}
