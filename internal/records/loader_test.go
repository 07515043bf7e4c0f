package records

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroview/backend/internal/domain"
)

// sliceFetcher pages through a fixed slice using the index as cursor.
type sliceFetcher struct {
	recs    []domain.CalculationRecord
	calls   int
	err     error
	block   chan struct{}
	entered chan struct{}
}

func (f *sliceFetcher) ListRecords(_ context.Context, pageSize int, cursor string) (domain.RecordPage, error) {
	f.calls++
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return domain.RecordPage{}, f.err
	}
	start := 0
	if cursor != "" {
		fmt.Sscanf(cursor, "%d", &start)
	}
	end := min(start+pageSize, len(f.recs))
	page := f.recs[start:end]
	return domain.RecordPage{
		Records:    page,
		NextCursor: fmt.Sprint(end),
		HasMore:    len(page) == pageSize,
	}, nil
}

func makeRecords(n int) []domain.CalculationRecord {
	out := make([]domain.CalculationRecord, n)
	for i := range out {
		out[i] = domain.CalculationRecord{ID: fmt.Sprint(i), Culture: domain.CultureSoja, Litros: 1}
	}
	return out
}

func TestLoader_PagesUntilShortPage(t *testing.T) {
	f := &sliceFetcher{recs: makeRecords(120)}
	l := NewLoader(f, 50)
	ctx := context.Background()

	n, err := l.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	assert.True(t, l.HasMore())

	n, err = l.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	assert.True(t, l.HasMore())

	n, err = l.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.False(t, l.HasMore())

	n, err = l.LoadMore(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 3, f.calls, "no request after a short page")
	assert.Len(t, l.Records(), 120)
	assert.Equal(t, 120.0, Aggregate(l.Records()).TotalLiters)
}

func TestLoader_ExactMultipleCostsOneEmptyRequest(t *testing.T) {
	f := &sliceFetcher{recs: makeRecords(100)}
	l := NewLoader(f, 50)

	require.NoError(t, l.LoadAll(context.Background()))
	assert.Equal(t, 3, f.calls)
	assert.Len(t, l.Records(), 100)
}

func TestLoader_ErrorKeepsState(t *testing.T) {
	f := &sliceFetcher{err: errors.New("store offline")}
	l := NewLoader(f, 50)

	_, err := l.LoadMore(context.Background())
	require.EqualError(t, err, "store offline")
	assert.True(t, l.HasMore())
	assert.Empty(t, l.Records())
}

func TestLoader_RejectsOverlappingLoads(t *testing.T) {
	f := &sliceFetcher{recs: makeRecords(10), block: make(chan struct{}), entered: make(chan struct{}, 1)}
	l := NewLoader(f, 50)

	done := make(chan error, 1)
	go func() {
		_, err := l.LoadMore(context.Background())
		done <- err
	}()
	<-f.entered

	_, err := l.LoadMore(context.Background())
	assert.ErrorIs(t, err, ErrLoadInProgress)

	close(f.block)
	require.NoError(t, <-done)
	assert.Len(t, l.Records(), 10)
	assert.Equal(t, 1, f.calls)
}

func TestLoader_Reset(t *testing.T) {
	f := &sliceFetcher{recs: makeRecords(5)}
	l := NewLoader(f, 50)
	require.NoError(t, l.LoadAll(context.Background()))
	require.False(t, l.HasMore())

	l.Reset()
	assert.True(t, l.HasMore())
	assert.Empty(t, l.Records())
}

func TestLoader_ResetDiscardsInFlightPage(t *testing.T) {
	f := &sliceFetcher{recs: makeRecords(120)}
	l := NewLoader(f, 50)

	n, err := l.LoadMore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50, n)

	f.block = make(chan struct{})
	f.entered = make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		_, err := l.LoadMore(context.Background())
		done <- err
	}()
	<-f.entered

	l.Reset()
	close(f.block)
	require.NoError(t, <-done)

	assert.Empty(t, l.Records())
	assert.True(t, l.HasMore())

	f.block, f.entered = nil, nil
	n, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50, n)
	assert.Equal(t, "0", l.Records()[0].ID)
}
