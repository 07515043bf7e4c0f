package records

import (
	"context"
	"errors"
	"sync"

	"github.com/agroview/backend/internal/domain"
)

// ErrLoadInProgress is returned when LoadMore is called while a fetch is running.
var ErrLoadInProgress = errors.New("records: load already in progress")

// PageFetcher fetches one normalized page.
type PageFetcher interface {
	ListRecords(ctx context.Context, pageSize int, cursor string) (domain.RecordPage, error)
}

// Loader accumulates pages client-side. Filtering and totals apply to what
// has been loaded so far, not to the whole collection.
type Loader struct {
	fetcher  PageFetcher
	pageSize int

	loading sync.Mutex

	mu      sync.RWMutex
	records []domain.CalculationRecord
	cursor  string
	hasMore bool
	gen     uint64 // bumped by Reset; a fetch started under an older gen is dropped
}

// NewLoader creates a loader fetching pageSize records per call.
func NewLoader(fetcher PageFetcher, pageSize int) *Loader {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Loader{fetcher: fetcher, pageSize: pageSize, hasMore: true}
}

// LoadMore fetches the next page and appends it. It returns the number of
// records appended, 0 without a request when the last page was short.
func (l *Loader) LoadMore(ctx context.Context) (int, error) {
	if !l.loading.TryLock() {
		return 0, ErrLoadInProgress
	}
	defer l.loading.Unlock()

	l.mu.RLock()
	cursor, more, gen := l.cursor, l.hasMore, l.gen
	l.mu.RUnlock()
	if !more {
		return 0, nil
	}

	page, err := l.fetcher.ListRecords(ctx, l.pageSize, cursor)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		return 0, nil
	}
	l.records = append(l.records, page.Records...)
	l.cursor = page.NextCursor
	l.hasMore = page.HasMore

	return len(page.Records), nil
}

// LoadAll keeps loading until a short page is returned.
func (l *Loader) LoadAll(ctx context.Context) error {
	for l.HasMore() {
		if _, err := l.LoadMore(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Records returns a copy of everything loaded.
func (l *Loader) Records() []domain.CalculationRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.CalculationRecord, len(l.records))
	copy(out, l.records)
	return out
}

// HasMore reports whether another page may exist.
func (l *Loader) HasMore() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasMore
}

// Reset drops loaded records so the next LoadMore starts from the first page.
// A page still in flight when Reset is called is discarded.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.records = nil
	l.cursor = ""
	l.hasMore = true
}
