// Package webclient holds the shared plumbing for the outbound JSON APIs.
package webclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// New returns an http.Client with the given total request timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetJSON performs a GET request and decodes the JSON response into dst.
// Non-2xx responses are returned as errors. Error messages carry only
// scheme, host and path: query strings may hold credentials and the
// message ends up in client-facing error bodies.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	safeURL := redactQuery(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", safeURL, stripURLError(err))
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", safeURL, stripURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("GET %s returned status %d", safeURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", safeURL, err)
	}

	return nil
}

func redactQuery(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}

	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String()
}

// stripURLError unwraps url.Error, whose message repeats the full request
// URL including the query string.
func stripURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}

	return err
}
