package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/wiki"
)

// SummaryClient fetches encyclopedia page summaries.
type SummaryClient interface {
	Summary(ctx context.Context, title string) (wiki.Summary, error)
}

// WikiService resolves city lookups against the encyclopedia summary API.
type WikiService struct {
	client SummaryClient
}

func NewWikiService(client SummaryClient) *WikiService {
	return &WikiService{client: client}
}

// Lookup fetches the summary for the requested city. Upstream failures are
// logged and surfaced to the caller; there is no retry.
func (s *WikiService) Lookup(ctx context.Context, req dto.WikiRequest) (dto.WikiSummaryResponse, error) {
	summary, err := s.client.Summary(ctx, req.Ciudad)
	if err != nil {
		slog.ErrorContext(ctx, "encyclopedia lookup failed",
			slog.String("ciudad", req.Ciudad),
			slog.String("error", err.Error()))

		return dto.WikiSummaryResponse{}, fmt.Errorf("encyclopedia lookup: %w", err)
	}

	return dto.WikiSummaryResponse{
		Titulo:   summary.Title,
		Extracto: summary.Extract,
		URL:      summary.PageURL,
		Imagen:   summary.ImageURL,
	}, nil
}
