package service

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/records"
)

// DashboardService aggregates the analytics panels and the latest records
type DashboardService struct {
	analytics *AnalyticsBridge
	weather   *WeatherService
	records   *RecordService
	clock     clockwork.Clock
	log       *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analytics *AnalyticsBridge,
	weather *WeatherService,
	records *RecordService,
	clock clockwork.Clock,
	log *zap.Logger,
) *DashboardService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DashboardService{
		analytics: analytics,
		weather:   weather,
		records:   records,
		clock:     clock,
		log:       log,
	}
}

// GetDashboardData fetches both panels concurrently, then the first page of
// records. A listing failure is reported in the payload, not as an error.
func (s *DashboardService) GetDashboardData(ctx context.Context) (domain.DashboardData, error) {
	stats, weather, err := s.GetPanels(ctx, domain.DefaultRainfallSample, domain.WeatherRequest{
		Lat:  domain.SaoPauloLat,
		Lon:  domain.SaoPauloLon,
		Dias: domain.DefaultDias,
	})
	if err != nil {
		return domain.DashboardData{}, err
	}

	data := domain.DashboardData{
		Stats:     stats,
		Weather:   weather,
		Records:   []domain.CalculationRecord{},
		Timestamp: s.clock.Now(),
	}

	page, err := s.records.ListRecords(ctx, 0, "")
	if err != nil {
		data.RecordsError = err.Error()
		return data, nil
	}
	data.Records = page.Records
	data.NextCursor = page.NextCursor
	data.HasMore = page.HasMore
	data.Totals = records.Aggregate(page.Records)

	return data, nil
}

// GetPanels issues the stats and weather requests concurrently and waits for
// both.
func (s *DashboardService) GetPanels(
	ctx context.Context,
	samples []float64,
	req domain.WeatherRequest,
) (domain.StatsResponse, domain.WeatherResponse, error) {
	var (
		stats      domain.StatsResponse
		weather    domain.WeatherResponse
		statsErr   error
		weatherErr error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = s.analytics.GetStatsSummary(ctx, samples)
	}()
	go func() {
		defer wg.Done()
		weather, weatherErr = s.weather.GetWeatherSummary(ctx, req)
	}()
	wg.Wait()

	for _, err := range []error{statsErr, weatherErr} {
		if err != nil {
			s.log.Error("dashboard panel fetch failed", zap.Error(err))
			return domain.StatsResponse{}, domain.WeatherResponse{}, err
		}
	}
	return stats, weather, nil
}
