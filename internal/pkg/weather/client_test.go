package weather_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/weather"
)

func currentWeatherHandler(t *testing.T, gotQuery *url.Values) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "Bogotá",
			"sys":  map[string]any{"country": "CO"},
			"main": map[string]any{
				"temp":       14.2,
				"feels_like": 13.1,
				"humidity":   82,
			},
			"weather": []map[string]any{
				{"description": "lluvia ligera", "icon": "10d"},
			},
		})
	}
}

func TestClient_Current(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(currentWeatherHandler(t, &gotQuery))
	defer server.Close()

	client := weather.NewClientWithURL(server.URL, "test-key", "es", 2*time.Second)

	got, err := client.Current(context.Background(), "Bogotá")
	require.NoError(t, err)

	assert.Equal(t, "Bogotá", got.City)
	assert.Equal(t, "CO", got.CountryCode)
	assert.Equal(t, 14.2, got.TemperatureC)
	assert.Equal(t, 13.1, got.FeelsLikeC)
	assert.Equal(t, 82, got.HumidityPct)
	assert.Equal(t, "lluvia ligera", got.Condition)
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@2x.png", got.IconURL)

	assert.Equal(t, "Bogotá", gotQuery.Get("q"))
	assert.Equal(t, "test-key", gotQuery.Get("appid"))
	assert.Equal(t, "metric", gotQuery.Get("units"))
	assert.Equal(t, "es", gotQuery.Get("lang"))
}

func TestClient_Current_EmptyConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "Lima",
			"sys":  map[string]any{"country": "PE"},
			"main": map[string]any{"temp": 19.0, "feels_like": 19.0, "humidity": 70},
		})
	}))
	defer server.Close()

	client := weather.NewClientWithURL(server.URL, "test-key", "es", 2*time.Second)

	got, err := client.Current(context.Background(), "Lima")
	require.NoError(t, err)

	assert.Empty(t, got.Condition)
}

func TestClient_Current_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := weather.NewClientWithURL(server.URL, "bad-key", "es", 2*time.Second)

	_, err := client.Current(context.Background(), "Lima")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Current_ErrorOmitsAPIKey(t *testing.T) {
	const apiKey = "sk-0cf3a9e7d1b24f08"

	t.Run("upstream_rejects", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := weather.NewClientWithURL(server.URL, apiKey, "es", 2*time.Second)

		_, err := client.Current(context.Background(), "Lima")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), apiKey)
		assert.NotContains(t, err.Error(), "appid")
	})

	t.Run("connection_refused", func(t *testing.T) {
		// closed server: the transport error must not repeat the query string
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := weather.NewClientWithURL(server.URL, apiKey, "es", 2*time.Second)

		_, err := client.Current(context.Background(), "Lima")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), apiKey)
		assert.NotContains(t, err.Error(), "appid")
	})
}
