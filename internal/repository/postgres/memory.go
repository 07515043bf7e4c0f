package postgres

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/agroview/backend/internal/domain"
)

// MemoryRepository implements domain.RecordRepository in process, used when
// no database is configured. It orders and pages exactly like Postgres.
type MemoryRepository struct {
	clock clockwork.Clock

	mu   sync.RWMutex
	recs []domain.CalculationRecord // sorted by (CreatedAt, ID) descending
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository(clock clockwork.Clock) *MemoryRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryRepository{clock: clock}
}

// AppendRecord stores rec with a fresh id and the current clock time
func (r *MemoryRepository) AppendRecord(_ context.Context, rec domain.CalculationRecord) (string, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = r.clock.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(rec)
	return rec.ID, nil
}

// ImportRecords stores recs keeping their timestamps
func (r *MemoryRepository) ImportRecords(_ context.Context, recs []domain.CalculationRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now().UTC()
	for _, rec := range recs {
		rec.ID = uuid.NewString()
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		r.insert(rec)
	}
	return int64(len(recs)), nil
}

func (r *MemoryRepository) insert(rec domain.CalculationRecord) {
	key := pageKey{CreatedAt: rec.CreatedAt, ID: rec.ID}
	i := sort.Search(len(r.recs), func(i int) bool {
		return pageKey{CreatedAt: r.recs[i].CreatedAt, ID: r.recs[i].ID}.sortsAfter(key)
	})
	r.recs = append(r.recs, domain.CalculationRecord{})
	copy(r.recs[i+1:], r.recs[i:])
	r.recs[i] = rec
}

// ListRecords returns up to pageSize records after cursor, newest first
func (r *MemoryRepository) ListRecords(_ context.Context, pageSize int, cursor string) (domain.RawPage, error) {
	if pageSize <= 0 {
		return domain.RawPage{NextCursor: cursor}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if cursor != "" {
		key, err := decodeCursor(cursor)
		if err != nil {
			return domain.RawPage{}, err
		}
		start = sort.Search(len(r.recs), func(i int) bool {
			return pageKey{CreatedAt: r.recs[i].CreatedAt, ID: r.recs[i].ID}.sortsAfter(key)
		})
	}
	end := min(start+pageSize, len(r.recs))

	page := domain.RawPage{NextCursor: cursor}
	for _, rec := range r.recs[start:end] {
		page.Records = append(page.Records, rec.ToRaw())
	}
	if end > start {
		last := r.recs[end-1]
		page.NextCursor = encodeCursor(pageKey{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}

// Health always returns nil in memory mode
func (r *MemoryRepository) Health(context.Context) error {
	return nil
}
