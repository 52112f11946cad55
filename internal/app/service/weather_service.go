package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/weather"
)

// WeatherClient fetches current weather reports.
type WeatherClient interface {
	Current(ctx context.Context, city string) (weather.Report, error)
}

// WeatherService resolves city lookups against the weather provider.
type WeatherService struct {
	client        WeatherClient
	keyConfigured bool
}

func NewWeatherService(client WeatherClient, apiKey string) *WeatherService {
	return &WeatherService{
		client:        client,
		keyConfigured: apiKey != "",
	}
}

// Lookup fetches the current weather for the requested city. The missing
// credential is only detected here so the process can start without it.
func (s *WeatherService) Lookup(ctx context.Context, req dto.WeatherRequest) (dto.WeatherResponse, error) {
	if !s.keyConfigured {
		return dto.WeatherResponse{}, ErrWeatherKeyNotConfigured
	}

	report, err := s.client.Current(ctx, req.Ciudad)
	if err != nil {
		slog.ErrorContext(ctx, "weather lookup failed",
			slog.String("ciudad", req.Ciudad),
			slog.String("error", err.Error()))

		return dto.WeatherResponse{}, fmt.Errorf("weather lookup: %w", err)
	}

	return dto.WeatherResponse{
		Ciudad:           report.City,
		Pais:             report.CountryCode,
		Temperatura:      report.TemperatureC,
		SensacionTermica: report.FeelsLikeC,
		Humedad:          report.HumidityPct,
		Condicion:        report.Condition,
		Icono:            report.IconURL,
	}, nil
}
