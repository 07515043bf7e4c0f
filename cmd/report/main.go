// Command report pages through the calculation log and prints totals for the
// selected culture, product and recency window.
//
// Usage:
//
//	go run ./cmd/report -culture soja -days 30
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/agroview/backend/internal/config"
	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/formula"
	"github.com/agroview/backend/internal/observability"
	"github.com/agroview/backend/internal/records"
	"github.com/agroview/backend/internal/repository/postgres"
	"github.com/agroview/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	culture := flag.String("culture", domain.CultureAll, "culture filter (soja, milho, cafe or all)")
	product := flag.String("product", "", "case-insensitive product substring")
	days := flag.Int("days", 0, "only records from the last N days (0 = all)")
	limit := flag.Int("limit", 20, "rows to print")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Env, "warn")
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo, closeRepo, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	clock := clockwork.NewRealClock()
	svc := service.NewRecordService(repo, cfg.PageSize, clock, observability.NewMetrics(), logger)
	loader := svc.NewLoader(cfg.PageSize)
	if err := loader.LoadAll(ctx); err != nil {
		return fmt.Errorf("loading records: %w", err)
	}

	all := loader.Records()
	filtered := records.Filter(all, records.Criteria{
		Culture: *culture,
		Product: *product,
		Since:   records.CutoffForDays(clock.Now(), *days),
	})
	totals := records.Aggregate(filtered)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCULTURE\tPRODUCT\tLITERS\tDETAILS")
	for i, rec := range filtered {
		if i >= *limit {
			break
		}
		date := "-"
		if !rec.CreatedAt.IsZero() {
			date = rec.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			date, rec.Culture.Label(), rec.Produto, formula.FormatLiters(rec.Litros), rec.Details)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d of %d records | area %s | volume %s\n",
		totals.Count, len(all), formula.FormatHectares(totals.TotalAreaHa), formula.FormatLiters(totals.TotalLiters))
	return nil
}
