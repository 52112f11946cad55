package service

import (
	"context"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/advice"
)

// AdviceService generates travel advice from the fixed template tables.
type AdviceService struct{}

func NewAdviceService() *AdviceService {
	return &AdviceService{}
}

// Generate is a pure function of the request: repeated identical calls
// yield identical output.
func (s *AdviceService) Generate(_ context.Context, req dto.AdviceRequest) (dto.AdviceResponse, error) {
	return dto.AdviceResponse{
		Destino:            req.Destino,
		TipoViaje:          req.TipoViaje,
		Presupuesto:        req.Presupuesto,
		Recomendaciones:    advice.Recommendations(req.Destino, req.TipoViaje),
		ConsejoPresupuesto: advice.BudgetNote(req.Destino, req.Presupuesto),
	}, nil
}
