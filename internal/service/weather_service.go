package service

import (
	"context"

	"github.com/agroview/backend/internal/domain"
	"github.com/agroview/backend/internal/observability"
)

const weatherEndpoint = "weather"

// WeatherService handles the weather summary panel
type WeatherService struct {
	remote *RemoteClient
}

// NewWeatherService creates a new weather service
func NewWeatherService(remote *RemoteClient) *WeatherService {
	return &WeatherService{remote: remote}
}

// GetWeatherSummary returns the weather summary for req. The payload is passed
// through from the source; remote failures return the canned mock.
func (s *WeatherService) GetWeatherSummary(ctx context.Context, req domain.WeatherRequest) (domain.WeatherResponse, error) {
	if s.remote.mode.UseMock {
		if err := s.remote.simulateLatency(ctx); err != nil {
			return domain.WeatherResponse{}, err
		}
		s.remote.served(weatherEndpoint, observability.SourceMock)
		return s.getMockWeather(req), nil
	}

	var summary domain.WeatherResponse
	if err := s.remote.post(ctx, weatherEndpoint, "/weather/summary", req, &summary); err != nil {
		s.remote.fallback(weatherEndpoint, err)
		return s.getMockWeather(req), nil
	}

	s.remote.served(weatherEndpoint, observability.SourceRemote)
	summary.IsMock = false
	return summary, nil
}

// getMockWeather returns the canned summary with the requested day count
func (s *WeatherService) getMockWeather(req domain.WeatherRequest) domain.WeatherResponse {
	return domain.WeatherResponse{
		PrecipitacaoTotalMM: 85,
		TemperaturaMediaC:   24.5,
		UmidadeMediaPct:     68,
		Dias:                req.Dias,
		IsMock:              true,
	}
}
