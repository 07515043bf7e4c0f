package domain

import (
	"context"
	"errors"
	"time"
)

// RecordsCollection is the store collection holding calculation records.
const RecordsCollection = "insumos_calculos"

// ErrInvalidCursor is returned when a page cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid page cursor")

// DefaultPageSize is the number of records fetched per page.
const DefaultPageSize = 50

// MaxPageSize bounds a single page request.
const MaxPageSize = 200

// DashboardData aggregates both analytics panels and the first page of records
type DashboardData struct {
	Stats        StatsResponse       `json:"stats"`
	Weather      WeatherResponse     `json:"weather"`
	Records      []CalculationRecord `json:"records"`
	Totals       Totals              `json:"totals"`
	NextCursor   string              `json:"nextCursor,omitempty"`
	HasMore      bool                `json:"hasMore"`
	RecordsError string              `json:"recordsError,omitempty"`
	Timestamp    time.Time           `json:"timestamp"`
}

// RawPage is one page of stored rows as returned by a RecordRepository.
type RawPage struct {
	Records    []RawRecord
	NextCursor string
}

// RecordPage is one normalized page. HasMore is true iff the page was full.
type RecordPage struct {
	Records    []CalculationRecord `json:"records"`
	NextCursor string              `json:"nextCursor,omitempty"`
	HasMore    bool                `json:"hasMore"`
}

// RecordRepository defines the interface for calculation persistence.
// The store assigns ID and CreatedAt on AppendRecord.
type RecordRepository interface {
	// AppendRecord writes one record and returns its store-assigned id
	AppendRecord(ctx context.Context, rec CalculationRecord) (string, error)

	// ListRecords returns up to pageSize records ordered by CreatedAt descending,
	// continuing after cursor when non-empty
	ListRecords(ctx context.Context, pageSize int, cursor string) (RawPage, error)

	// ImportRecords bulk-writes records keeping their CreatedAt (seeding)
	ImportRecords(ctx context.Context, recs []CalculationRecord) (int64, error)

	// Health checks store connectivity
	Health(ctx context.Context) error
}
