package dto

import (
	"fmt"
	"net/http"

	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/exception"
)

// Defaults applied to optional /consejos fields.
const (
	DefaultTripType = "vacaciones"
	DefaultBudget   = "medio"
)

// WikiRequest carries the /wiki query parameters.
type WikiRequest struct {
	Ciudad string `json:"ciudad" validate:"required" desc:"Nombre de la ciudad o lugar a consultar en la enciclopedia"`
}

func (r *WikiRequest) BindQuery(req *http.Request) error {
	r.Ciudad = req.URL.Query().Get("ciudad")

	return r.Validate()
}

func (r *WikiRequest) Validate() error {
	return validateRequired(r)
}

// WeatherRequest carries the /clima query parameters.
type WeatherRequest struct {
	Ciudad string `json:"ciudad" validate:"required" desc:"Nombre de la ciudad para consultar el clima actual"`
}

func (r *WeatherRequest) BindQuery(req *http.Request) error {
	r.Ciudad = req.URL.Query().Get("ciudad")

	return r.Validate()
}

func (r *WeatherRequest) Validate() error {
	return validateRequired(r)
}

// FlightSearchRequest is the /vuelos request body.
type FlightSearchRequest struct {
	Origen  string `json:"origen" validate:"required" desc:"Ciudad o aeropuerto de origen"`
	Destino string `json:"destino" validate:"required" desc:"Ciudad o aeropuerto de destino"`
	Fecha   string `json:"fecha" validate:"required" desc:"Fecha del vuelo (YYYY-MM-DD)"`
}

func (r *FlightSearchRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *FlightSearchRequest) Validate() error {
	return validateRequired(r)
}

// LodgingSearchRequest carries the /hospedaje query parameters. The two
// date fields are accepted but do not affect the generated offers.
type LodgingSearchRequest struct {
	Ciudad       string `json:"ciudad" validate:"required" desc:"Ciudad donde buscar hospedaje"`
	FechaEntrada string `json:"fechaEntrada" desc:"Fecha de entrada (YYYY-MM-DD)"`
	FechaSalida  string `json:"fechaSalida" desc:"Fecha de salida (YYYY-MM-DD)"`
}

func (r *LodgingSearchRequest) BindQuery(req *http.Request) error {
	query := req.URL.Query()
	r.Ciudad = query.Get("ciudad")
	r.FechaEntrada = query.Get("fechaEntrada")
	r.FechaSalida = query.Get("fechaSalida")

	return r.Validate()
}

func (r *LodgingSearchRequest) Validate() error {
	return validateRequired(r)
}

// AdviceRequest is the /consejos request body.
type AdviceRequest struct {
	Destino     string `json:"destino" validate:"required" desc:"Destino del viaje"`
	TipoViaje   string `json:"tipoViaje" desc:"Tipo de viaje: negocios, aventura, cultural o vacaciones"`
	Presupuesto string `json:"presupuesto" desc:"Presupuesto del viaje: bajo, medio o alto"`
}

func (r *AdviceRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	if r.TipoViaje == "" {
		r.TipoViaje = DefaultTripType
	}

	if r.Presupuesto == "" {
		r.Presupuesto = DefaultBudget
	}

	return nil
}

func (r *AdviceRequest) Validate() error {
	return validateRequired(r)
}

func validateRequired(req interface{}) error {
	if err := ValidateSingleError(req); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
