package service

import (
	"context"
	"math/rand"
	"sync"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/mockdata"
)

// OfferService fabricates placeholder flight and lodging offers. The random
// source is injected so tests can seed it; rand.Rand is not safe for
// concurrent use, so generation takes the mutex.
type OfferService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewOfferService(rng *rand.Rand) *OfferService {
	return &OfferService{rng: rng}
}

// SearchFlights returns three synthetic offers, one per airline archetype.
// Output varies across calls for the same input: flight-number suffixes and
// prices are drawn fresh each time.
func (s *OfferService) SearchFlights(_ context.Context, req dto.FlightSearchRequest) (dto.FlightSearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.FlightSearchResponse{
		Vuelos: mockdata.Flights(s.rng, req.Origen, req.Destino, req.Fecha),
	}, nil
}

// SearchLodgings returns three synthetic offers, one per lodging archetype.
// The stay dates are accepted but do not change the result.
func (s *OfferService) SearchLodgings(_ context.Context, req dto.LodgingSearchRequest) (dto.LodgingSearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.LodgingSearchResponse{
		Hospedajes: mockdata.Lodgings(s.rng, req.Ciudad),
	}, nil
}
