package wiki_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/wiki"
)

func summaryHandler(t *testing.T, withThumbnail bool) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"title":   "Madrid",
			"extract": "Madrid es la capital de España.",
			"content_urls": map[string]any{
				"desktop": map[string]any{
					"page": "https://es.wikipedia.org/wiki/Madrid",
				},
			},
		}
		if withThumbnail {
			payload["thumbnail"] = map[string]any{
				"source": "https://upload.wikimedia.org/madrid.jpg",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func TestClient_Summary(t *testing.T) {
	server := httptest.NewServer(summaryHandler(t, true))
	defer server.Close()

	client := wiki.NewClientWithURL(server.URL, 2*time.Second)

	got, err := client.Summary(context.Background(), "Madrid")
	require.NoError(t, err)

	assert.Equal(t, "Madrid", got.Title)
	assert.Equal(t, "Madrid es la capital de España.", got.Extract)
	assert.Equal(t, "https://es.wikipedia.org/wiki/Madrid", got.PageURL)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://upload.wikimedia.org/madrid.jpg", *got.ImageURL)
}

func TestClient_Summary_NoThumbnail(t *testing.T) {
	server := httptest.NewServer(summaryHandler(t, false))
	defer server.Close()

	client := wiki.NewClientWithURL(server.URL, 2*time.Second)

	got, err := client.Summary(context.Background(), "Madrid")
	require.NoError(t, err)

	assert.Nil(t, got.ImageURL)
}

func TestClient_Summary_NoContentURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":   "Madrid",
			"extract": "Madrid es la capital de España.",
		})
	}))
	defer server.Close()

	client := wiki.NewClientWithURL(server.URL, 2*time.Second)

	got, err := client.Summary(context.Background(), "Madrid")
	require.NoError(t, err)

	assert.Empty(t, got.PageURL)
	assert.Nil(t, got.ImageURL)
}

func TestClient_Summary_EscapesTitle(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		summaryHandler(t, false)(w, r)
	}))
	defer server.Close()

	client := wiki.NewClientWithURL(server.URL, 2*time.Second)

	_, err := client.Summary(context.Background(), "San José")
	require.NoError(t, err)

	assert.Equal(t, "/San%20Jos%C3%A9", gotPath)
}

func TestClient_Summary_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := wiki.NewClientWithURL(server.URL, 2*time.Second)

	_, err := client.Summary(context.Background(), "NoExiste")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
