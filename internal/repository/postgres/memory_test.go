package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroview/backend/internal/domain"
)

func soja(area, dose float64) domain.CalculationRecord {
	d := domain.RowCropDosage{AreaHa: area, DoseLPerHa: dose}
	return domain.CalculationRecord{Culture: domain.CultureSoja, Produto: "Herbicida", Dosage: d, Litros: d.Liters(), Details: d.Details()}
}

func TestMemoryRepository_AppendAssignsIDAndTime(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(clock)
	ctx := context.Background()

	id, err := repo.AppendRecord(ctx, soja(12, 2.5))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	page, err := repo.ListRecords(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, id, page.Records[0].ID)
	assert.Equal(t, clock.Now().UTC(), page.Records[0].CreatedAt)
	assert.Equal(t, 30.0, *page.Records[0].Litros)
	assert.Nil(t, page.Records[0].Ruas)
}

func TestMemoryRepository_NewestFirst(t *testing.T) {
	clock := clockwork.NewFakeClock()
	repo := NewMemoryRepository(clock)
	ctx := context.Background()

	first, _ := repo.AppendRecord(ctx, soja(1, 1))
	clock.Advance(time.Minute)
	second, _ := repo.AppendRecord(ctx, soja(2, 1))

	page, err := repo.ListRecords(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, second, page.Records[0].ID)
	assert.Equal(t, first, page.Records[1].ID)
}

func TestMemoryRepository_Pagination(t *testing.T) {
	clock := clockwork.NewFakeClock()
	repo := NewMemoryRepository(clock)
	ctx := context.Background()

	recs := make([]domain.CalculationRecord, 120)
	for i := range recs {
		recs[i] = soja(float64(i+1), 1)
		recs[i].CreatedAt = clock.Now().Add(-time.Duration(i) * time.Hour)
	}
	n, err := repo.ImportRecords(ctx, recs)
	require.NoError(t, err)
	require.EqualValues(t, 120, n)

	seen := map[string]bool{}
	var sizes []int
	cursor := ""
	var prev time.Time
	for {
		page, err := repo.ListRecords(ctx, 50, cursor)
		require.NoError(t, err)
		sizes = append(sizes, len(page.Records))
		for _, r := range page.Records {
			ts := r.CreatedAt.(time.Time)
			if !prev.IsZero() {
				assert.True(t, ts.Before(prev), "descending order")
			}
			prev = ts
			seen[r.ID] = true
		}
		if len(page.Records) < 50 {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, []int{50, 50, 20}, sizes)
	assert.Len(t, seen, 120)
}

func TestMemoryRepository_SameTimestampPagesByID(t *testing.T) {
	repo := NewMemoryRepository(clockwork.NewFakeClock())
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := repo.AppendRecord(ctx, soja(1, 1))
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	cursor := ""
	for i := 0; i < 3; i++ {
		page, err := repo.ListRecords(ctx, 2, cursor)
		require.NoError(t, err)
		for _, r := range page.Records {
			seen[r.ID] = true
		}
		cursor = page.NextCursor
	}
	assert.Len(t, seen, 5)
}

func TestMemoryRepository_EmptyPageKeepsCursor(t *testing.T) {
	repo := NewMemoryRepository(clockwork.NewFakeClock())
	ctx := context.Background()
	_, _ = repo.AppendRecord(ctx, soja(1, 1))

	page, err := repo.ListRecords(ctx, 1, "")
	require.NoError(t, err)
	next, err := repo.ListRecords(ctx, 1, page.NextCursor)
	require.NoError(t, err)
	assert.Empty(t, next.Records)
	assert.Equal(t, page.NextCursor, next.NextCursor)
}

func TestMemoryRepository_InvalidCursor(t *testing.T) {
	repo := NewMemoryRepository(nil)
	_, err := repo.ListRecords(context.Background(), 10, "not-a-cursor")
	assert.ErrorIs(t, err, domain.ErrInvalidCursor)
}

func TestMemoryRepository_NonPositivePageSize(t *testing.T) {
	repo := NewMemoryRepository(clockwork.NewFakeClock())
	ctx := context.Background()
	_, _ = repo.AppendRecord(ctx, soja(1, 1))

	for _, size := range []int{0, -1, -50} {
		page, err := repo.ListRecords(ctx, size, "")
		require.NoError(t, err)
		assert.Empty(t, page.Records)
		assert.Empty(t, page.NextCursor)
	}
}

func TestMemoryRepository_CursorWithForeignID(t *testing.T) {
	repo := NewMemoryRepository(nil)
	cursor := encodeCursor(pageKey{CreatedAt: time.Now(), ID: "42"})
	_, err := repo.ListRecords(context.Background(), 10, cursor)
	assert.ErrorIs(t, err, domain.ErrInvalidCursor)
}
