package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/observability"
	"github.com/agroview/backend/internal/records"
	"github.com/agroview/backend/pkg/utils"
)

// RecordService writes and pages calculation records
type RecordService struct {
	repo     DataRepository
	pageSize int
	clock    clockwork.Clock
	metrics  *observability.Metrics
	log      *zap.Logger
}

// NewRecordService creates a new record service. pageSize is used when a
// caller does not ask for one.
func NewRecordService(
	repo DataRepository,
	pageSize int,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	log *zap.Logger,
) *RecordService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RecordService{repo: repo, pageSize: pageSize, clock: clock, metrics: metrics, log: log}
}

// AppendRecord persists rec. Failures are returned for display, never retried.
func (s *RecordService) AppendRecord(ctx context.Context, rec domain.CalculationRecord) (string, error) {
	id, err := s.repo.AppendRecord(ctx, rec)
	if err != nil {
		s.metrics.AppendErrors.Inc()
		s.log.Error("failed to save calculation",
			zap.String("culture", string(rec.Culture)), zap.Error(err))
		return "", fmt.Errorf("records: failed to append calculation: %w", err)
	}
	s.metrics.RecordsAppended.Inc()
	return id, nil
}

// ListRecords returns one normalized page, newest first. HasMore is true iff
// the page came back full, so a collection that is an exact multiple of the
// page size costs one extra, empty request.
func (s *RecordService) ListRecords(ctx context.Context, pageSize int, cursor string) (domain.RecordPage, error) {
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	pageSize = utils.ClampInt(pageSize, 1, domain.MaxPageSize)

	raw, err := s.repo.ListRecords(ctx, pageSize, cursor)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCursor) {
			return domain.RecordPage{}, err
		}
		s.log.Error("failed to list calculations", zap.Error(err))
		return domain.RecordPage{}, fmt.Errorf("records: failed to list calculations: %w", err)
	}

	return domain.RecordPage{
		Records:    records.NormalizeAll(raw.Records),
		NextCursor: raw.NextCursor,
		HasMore:    len(raw.Records) == pageSize,
	}, nil
}

// BrowseQuery selects a page and the filters applied to it.
type BrowseQuery struct {
	PageSize int
	Cursor   string
	Culture  string
	Product  string
	Days     int
}

// RecordView is a filtered page with totals over the filtered records.
type RecordView struct {
	domain.RecordPage
	Loaded int           `json:"loaded"`
	Totals domain.Totals `json:"totals"`
}

// BrowseRecords fetches one page and applies the culture, product and
// recency filters to it.
func (s *RecordService) BrowseRecords(ctx context.Context, q BrowseQuery) (RecordView, error) {
	page, err := s.ListRecords(ctx, q.PageSize, q.Cursor)
	if err != nil {
		return RecordView{}, err
	}

	loaded := len(page.Records)
	page.Records = records.Filter(page.Records, records.Criteria{
		Culture: q.Culture,
		Product: q.Product,
		Since:   records.CutoffForDays(s.clock.Now(), q.Days),
	})

	return RecordView{
		RecordPage: page,
		Loaded:     loaded,
		Totals:     records.Aggregate(page.Records),
	}, nil
}

// NewLoader returns a client-side accumulator over this service.
func (s *RecordService) NewLoader(pageSize int) *records.Loader {
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	return records.NewLoader(s, pageSize)
}

// Health checks the store
func (s *RecordService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}
