package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("development", "debug")
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = NewLogger("production", "warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("production", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestMetricsForTesting_AreIndependent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.RecordsAppended.Inc()
	a.AnalyticsRequests.WithLabelValues("stats", SourceFallback).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.RecordsAppended))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RecordsAppended))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.AnalyticsRequests.WithLabelValues("stats", SourceFallback)))
}
