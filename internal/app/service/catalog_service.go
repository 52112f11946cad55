package service

import (
	"context"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
)

// CatalogService serves the static status descriptor and the tool catalog.
// Parameter descriptors are derived from the request structs at
// construction time, so the catalog always reflects the validation the
// handlers actually perform.
type CatalogService struct {
	status  dto.StatusResponse
	catalog dto.ToolCatalogResponse
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		status: dto.StatusResponse{
			Status:  "ok",
			Message: "Asistente de viajes MCP en funcionamiento",
			Endpoints: []string{
				"/",
				"/tools",
				"/wiki",
				"/clima",
				"/vuelos",
				"/hospedaje",
				"/consejos",
			},
		},
		catalog: dto.ToolCatalogResponse{
			Tools: []dto.ToolDescriptor{
				{
					Name:        "buscar_informacion_ciudad",
					Description: "Busca el resumen enciclopédico de una ciudad o lugar",
					Parameters:  dto.ParamsFromStruct(dto.WikiRequest{}),
				},
				{
					Name:        "obtener_clima",
					Description: "Obtiene el clima actual de una ciudad",
					Parameters:  dto.ParamsFromStruct(dto.WeatherRequest{}),
				},
				{
					Name:        "buscar_vuelos",
					Description: "Busca vuelos disponibles entre dos ciudades en una fecha",
					Parameters:  dto.ParamsFromStruct(dto.FlightSearchRequest{}),
				},
				{
					Name:        "buscar_hospedaje",
					Description: "Busca opciones de hospedaje en una ciudad",
					Parameters:  dto.ParamsFromStruct(dto.LodgingSearchRequest{}),
				},
				{
					Name:        "generar_consejos",
					Description: "Genera consejos de viaje según destino, tipo de viaje y presupuesto",
					Parameters:  dto.ParamsFromStruct(dto.AdviceRequest{}),
				},
			},
		},
	}
}

func (s *CatalogService) Status(_ context.Context) (dto.StatusResponse, error) {
	return s.status, nil
}

func (s *CatalogService) Tools(_ context.Context) (dto.ToolCatalogResponse, error) {
	return s.catalog, nil
}
