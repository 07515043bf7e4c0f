package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/observability"
)

// AnalyticsMode selects between the mock generator and the remote endpoint.
// It is fixed at construction.
type AnalyticsMode struct {
	BaseURL string
	UseMock bool
}

// NewAnalyticsMode forces mock mode when no endpoint is configured.
func NewAnalyticsMode(baseURL string, useMock bool) AnalyticsMode {
	baseURL = strings.TrimRight(baseURL, "/")
	return AnalyticsMode{BaseURL: baseURL, UseMock: useMock || baseURL == ""}
}

// RemoteClient talks to the analytics/weather endpoint shared by the stats
// and weather panels.
type RemoteClient struct {
	mode        AnalyticsMode
	httpClient  *http.Client
	clock       clockwork.Clock
	mockLatency time.Duration
	metrics     *observability.Metrics
	log         *zap.Logger
}

// NewRemoteClient creates the client. mockLatency simulates the endpoint
// round trip in mock mode; zero disables it.
func NewRemoteClient(
	mode AnalyticsMode,
	timeout time.Duration,
	mockLatency time.Duration,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	log *zap.Logger,
) *RemoteClient {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if mode.UseMock {
		metrics.MockMode.Set(1)
	} else {
		metrics.MockMode.Set(0)
	}
	return &RemoteClient{
		mode: mode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:       clock,
		mockLatency: mockLatency,
		metrics:     metrics,
		log:         log,
	}
}

// Mode returns the configured mode.
func (c *RemoteClient) Mode() AnalyticsMode {
	return c.mode
}

// simulateLatency waits mockLatency or until ctx is done.
func (c *RemoteClient) simulateLatency(ctx context.Context) error {
	if c.mockLatency <= 0 {
		return nil
	}
	select {
	case <-c.clock.After(c.mockLatency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post sends in as JSON to path and decodes the response into out.
func (c *RemoteClient) post(ctx context.Context, endpoint, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("remote: failed to marshal request: %w", err)
	}

	url := c.mode.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.AnalyticsDuration.WithLabelValues(endpoint).Observe(c.clock.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("remote: %s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("remote: %s returned status %d: %s", endpoint, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// fallback records and logs a read-path failure answered by the mock.
func (c *RemoteClient) fallback(endpoint string, err error) {
	c.metrics.AnalyticsRequests.WithLabelValues(endpoint, observability.SourceFallback).Inc()
	c.log.Warn("analytics call failed, falling back to mock data",
		zap.String("endpoint", endpoint), zap.Error(err))
}

func (c *RemoteClient) served(endpoint, source string) {
	c.metrics.AnalyticsRequests.WithLabelValues(endpoint, source).Inc()
}
