package service

import (
	"context"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/formula"
	"github.com/agroview/backend/internal/observability"
)

const statsEndpoint = "stats"

// AnalyticsBridge serves the rainfall statistics panel, from the remote
// endpoint or the local mock computation.
type AnalyticsBridge struct {
	remote *RemoteClient
}

// NewAnalyticsBridge creates a new analytics bridge
func NewAnalyticsBridge(remote *RemoteClient) *AnalyticsBridge {
	return &AnalyticsBridge{remote: remote}
}

// GetStatsSummary returns descriptive statistics for samples. Remote failures
// are answered by the mock; only an empty sample is an error.
func (b *AnalyticsBridge) GetStatsSummary(ctx context.Context, samples []float64) (domain.StatsResponse, error) {
	if len(samples) == 0 {
		return domain.StatsResponse{}, formula.ErrEmptySample
	}

	if b.remote.mode.UseMock {
		if err := b.remote.simulateLatency(ctx); err != nil {
			return domain.StatsResponse{}, err
		}
		b.remote.served(statsEndpoint, observability.SourceMock)
		return b.getMockStats(samples)
	}

	var stats domain.StatsResponse
	err := b.remote.post(ctx, statsEndpoint, "/analytics/stats", domain.StatsRequest{Valores: samples}, &stats)
	if err != nil {
		b.remote.fallback(statsEndpoint, err)
		return b.getMockStats(samples)
	}

	b.remote.served(statsEndpoint, observability.SourceRemote)
	stats.IsMock = false
	return stats, nil
}

// getMockStats computes the statistics locally
func (b *AnalyticsBridge) getMockStats(samples []float64) (domain.StatsResponse, error) {
	stats, err := formula.ComputeStats(samples)
	if err != nil {
		return domain.StatsResponse{}, err
	}
	stats.IsMock = true
	return stats, nil
}
