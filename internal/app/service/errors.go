package service

import (
	"net/http"

	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/exception"
)

var ErrWeatherKeyNotConfigured = exception.ApplicationError{
	Message:    "WEATHER_API_KEY is not configured",
	StatusCode: http.StatusInternalServerError,
}
