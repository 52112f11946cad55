// Package wiki fetches page summaries from the Wikipedia REST API.
package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/webclient"
)

// Summary is the normalized result of a page summary lookup.
type Summary struct {
	Title    string
	Extract  string
	PageURL  string
	ImageURL *string
}

// Client fetches page summaries in a fixed language.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client against the public Wikipedia REST API
// for the given language edition.
func NewClient(lang string, timeout time.Duration) *Client {
	return &Client{
		baseURL: fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1/page/summary", lang),
		client:  webclient.New(timeout),
	}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, client: webclient.New(timeout)}
}

type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// Summary retrieves the page summary for the given title.
func (c *Client) Summary(ctx context.Context, title string) (Summary, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(title)

	var raw summaryResponse
	if err := webclient.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return Summary{}, fmt.Errorf("wikipedia summary for %s: %w", title, err)
	}

	result := Summary{
		Title:   raw.Title,
		Extract: raw.Extract,
		PageURL: raw.ContentURLs.Desktop.Page,
	}

	if raw.Thumbnail != nil && raw.Thumbnail.Source != "" {
		src := raw.Thumbnail.Source
		result.ImageURL = &src
	}

	return result, nil
}
