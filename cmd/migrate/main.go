// Command migrate applies the desired schema in migrations/ to the configured database using Atlas.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"order-fulfillment/internal/handler/middleware"
	"order-fulfillment/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

var (
	schemaFile = flag.String("schema", "migrations/001_initial_schema.sql", "Desired-state schema file")
	devURL     = flag.String("dev-url", "docker://postgres/17/dev", "Atlas dev database used to compute the diff")
	atlasBin   = flag.String("atlas", "atlas", "Path to the atlas binary")
	dryRun     = flag.Bool("dry-run", false, "Print the planned statements without applying them")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadToolConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(logger, cfg.DB); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dbCfg config.DBConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	abs, err := filepath.Abs(*schemaFile)
	if err != nil {
		return fmt.Errorf("resolve schema path: %w", err)
	}

	client, err := atlasexec.NewClient(filepath.Dir(abs), *atlasBin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + filepath.Base(abs),
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return fmt.Errorf("schema apply: %w", err)
	}

	if *dryRun {
		logger.Info("planned changes", "statements", res.Changes.Pending)
		return nil
	}
	logger.Info("schema applied",
		"database", dbCfg.DBName,
		"statements", len(res.Changes.Applied))
	return nil
}
