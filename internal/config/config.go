package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/agroview/backend/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DatabaseURL string
	Port        string
	Env         string
	LogLevel    string

	// Analytics endpoint. Mock unless APIURL is set and USE_MOCK is "false".
	APIURL           string
	UseMock          bool
	MockLatency      time.Duration
	AnalyticsTimeout time.Duration

	PageSize        int
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	mockLatency, err := parseDuration("MOCK_LATENCY", "500ms", true)
	if err != nil {
		return nil, err
	}
	analyticsTimeout, err := parseDuration("ANALYTICS_TIMEOUT", "10s", false)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "5s", false)
	if err != nil {
		return nil, err
	}

	pageSize, err := strconv.Atoi(getEnv("RECORDS_PAGE_SIZE", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > domain.MaxPageSize {
		return nil, fmt.Errorf("invalid RECORDS_PAGE_SIZE: must be between 1 and %d", domain.MaxPageSize)
	}

	apiURL := os.Getenv("API_URL")
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("GO_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		APIURL:           apiURL,
		UseMock:          apiURL == "" || os.Getenv("USE_MOCK") != "false",
		MockLatency:      mockLatency,
		AnalyticsTimeout: analyticsTimeout,
		PageSize:         pageSize,
		ShutdownTimeout:  shutdownTimeout,
	}

	if cfg.Port == "" {
		return nil, errors.New("PORT is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key, def string, allowZero bool) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, def))
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}
