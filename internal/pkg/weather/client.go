// Package weather fetches current conditions from OpenWeatherMap.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/webclient"
)

const (
	defaultBaseURL  = "https://api.openweathermap.org/data/2.5/weather"
	iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"
)

// Report is the normalized result of a current-weather lookup.
type Report struct {
	City         string
	CountryCode  string
	TemperatureC float64
	FeelsLikeC   float64
	HumidityPct  int
	Condition    string
	IconURL      string
}

// Client fetches current weather with metric units and localized
// condition text.
type Client struct {
	apiKey  string
	lang    string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client with the given API key and condition language.
func NewClient(apiKey, lang string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		lang:    lang,
		baseURL: defaultBaseURL,
		client:  webclient.New(timeout),
	}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey, lang string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		lang:    lang,
		baseURL: baseURL,
		client:  webclient.New(timeout),
	}
}

type owmResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Current retrieves the current weather for the given city.
func (c *Client) Current(ctx context.Context, city string) (Report, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", c.lang)

	endpoint := c.baseURL + "?" + query.Encode()

	var raw owmResponse
	if err := webclient.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return Report{}, fmt.Errorf("openweathermap current for %s: %w", city, err)
	}

	condition := ""
	icon := ""
	if len(raw.Weather) > 0 {
		condition = raw.Weather[0].Description
		icon = raw.Weather[0].Icon
	}

	return Report{
		City:         raw.Name,
		CountryCode:  raw.Sys.Country,
		TemperatureC: raw.Main.Temp,
		FeelsLikeC:   raw.Main.FeelsLike,
		HumidityPct:  raw.Main.Humidity,
		Condition:    condition,
		IconURL:      fmt.Sprintf(iconURLTemplate, icon),
	}, nil
}
