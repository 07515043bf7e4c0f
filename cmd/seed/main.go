// Command seed fills the calculation log with synthetic records.
//
// Usage:
//
//	go run ./cmd/seed -count 500
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/config"
	"github.com/agroview/backend/internal/observability"
	"github.com/agroview/backend/internal/repository/postgres"
	"github.com/agroview/backend/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	count := flag.Int("count", 500, "number of records to generate")
	rngSeed := flag.Uint64("seed", 0, "random seed (0 = random)")
	flag.Parse()

	if *count <= 0 {
		flag.Usage()
		return fmt.Errorf("-count must be positive")
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	logger, err := observability.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repo, closeRepo, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer closeRepo()
	if _, ok := repo.(*postgres.PostgresRepository); !ok {
		return fmt.Errorf("database unreachable, refusing to seed the in-memory store")
	}

	recs := seed.NewGenerator(*rngSeed, nil).Generate(*count)
	logger.Info("seeding calculation log", zap.Int("count", len(recs)))

	n, err := repo.ImportRecords(ctx, recs)
	if err != nil {
		return fmt.Errorf("importing records: %w", err)
	}
	logger.Info("seed complete", zap.Int64("inserted", n))
	return nil
}
