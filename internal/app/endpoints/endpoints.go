package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
)

// CatalogService serves the static status and tool discovery payloads.
type CatalogService interface {
	Status(ctx context.Context) (dto.StatusResponse, error)
	Tools(ctx context.Context) (dto.ToolCatalogResponse, error)
}

// WikiService resolves encyclopedia lookups.
type WikiService interface {
	Lookup(ctx context.Context, req dto.WikiRequest) (dto.WikiSummaryResponse, error)
}

// WeatherService resolves weather lookups.
type WeatherService interface {
	Lookup(ctx context.Context, req dto.WeatherRequest) (dto.WeatherResponse, error)
}

// OfferService fabricates flight and lodging offers.
type OfferService interface {
	SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightSearchResponse, error)
	SearchLodgings(ctx context.Context, req dto.LodgingSearchRequest) (dto.LodgingSearchResponse, error)
}

// AdviceService generates travel advice.
type AdviceService interface {
	Generate(ctx context.Context, req dto.AdviceRequest) (dto.AdviceResponse, error)
}

// Endpoints bundles every operation the router exposes.
type Endpoints struct {
	Status         endpoint.Endpoint
	Tools          endpoint.Endpoint
	WikiLookup     endpoint.Endpoint
	WeatherLookup  endpoint.Endpoint
	SearchFlights  endpoint.Endpoint
	SearchLodgings endpoint.Endpoint
	Advice         endpoint.Endpoint
}

func MakeEndpoints(
	catalog CatalogService,
	wiki WikiService,
	weather WeatherService,
	offers OfferService,
	advices AdviceService,
) Endpoints {
	return Endpoints{
		Status:         makeStatusEndpoint(catalog),
		Tools:          makeToolsEndpoint(catalog),
		WikiLookup:     makeWikiLookupEndpoint(wiki),
		WeatherLookup:  makeWeatherLookupEndpoint(weather),
		SearchFlights:  makeSearchFlightsEndpoint(offers),
		SearchLodgings: makeSearchLodgingsEndpoint(offers),
		Advice:         makeAdviceEndpoint(advices),
	}
}

func makeStatusEndpoint(service CatalogService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		status, err := service.Status(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog service: %w", err)
		}

		return status, nil
	}
}

func makeToolsEndpoint(service CatalogService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		tools, err := service.Tools(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog service: %w", err)
		}

		return tools, nil
	}
}

func makeWikiLookupEndpoint(service WikiService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.WikiRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		summary, err := service.Lookup(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("wiki service: %w", err)
		}

		return summary, nil
	}
}

func makeWeatherLookupEndpoint(service WeatherService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.WeatherRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		report, err := service.Lookup(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("weather service: %w", err)
		}

		return report, nil
	}
}

func makeSearchFlightsEndpoint(service OfferService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("offer service: %w", err)
		}

		return flights, nil
	}
}

func makeSearchLodgingsEndpoint(service OfferService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LodgingSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		lodgings, err := service.SearchLodgings(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("offer service: %w", err)
		}

		return lodgings, nil
	}
}

func makeAdviceEndpoint(service AdviceService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AdviceRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		advice, err := service.Generate(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("advice service: %w", err)
		}

		return advice, nil
	}
}
