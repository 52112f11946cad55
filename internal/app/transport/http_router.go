package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/config"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/endpoints"
	httptransport "github.com/jarondonp/mcp-travel-assistant/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
// Unmatched routes get chi's default 404.
func MakeHTTPRouter(
	_ *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Group(func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.RequestLogger(slog.Default()),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/", httptransport.MakeHandlerFunc(
			endpts.Status,
			httptransport.DecodeEmptyRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/tools", httptransport.MakeHandlerFunc(
			endpts.Tools,
			httptransport.DecodeEmptyRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/wiki", httptransport.MakeHandlerFunc(
			endpts.WikiLookup,
			httptransport.DecodeQueryRequest[dto.WikiRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/clima", httptransport.MakeHandlerFunc(
			endpts.WeatherLookup,
			httptransport.DecodeQueryRequest[dto.WeatherRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/vuelos", httptransport.MakeHandlerFunc(
			endpts.SearchFlights,
			httptransport.DecodeRequest[dto.FlightSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/hospedaje", httptransport.MakeHandlerFunc(
			endpts.SearchLodgings,
			httptransport.DecodeQueryRequest[dto.LodgingSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/consejos", httptransport.MakeHandlerFunc(
			endpts.Advice,
			httptransport.DecodeRequest[dto.AdviceRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
