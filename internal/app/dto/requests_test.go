//go:build unit

package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jarondonp/mcp-travel-assistant/internal/pkg/exception"
)

func TestRequestValidation(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req interface{ Validate() error }, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if !wantErr {
				return
			}

			var appErr exception.ApplicationError
			if !errors.As(err, &appErr) {
				t.Fatalf("Validate() error = %v, want ApplicationError", err)
			}

			if appErr.StatusCode != http.StatusBadRequest {
				t.Fatalf("Validate() status = %d, want %d", appErr.StatusCode, http.StatusBadRequest)
			}

			if diff := cmp.Diff(wantMsg, appErr.Message); diff != "" {
				t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("wiki_valid", validateRequest(&WikiRequest{Ciudad: "Madrid"}, false, ""))
	t.Run("wiki_missing_ciudad", validateRequest(&WikiRequest{}, true, "ciudad is a required field"))

	t.Run("weather_valid", validateRequest(&WeatherRequest{Ciudad: "Lima"}, false, ""))
	t.Run("weather_missing_ciudad", validateRequest(&WeatherRequest{}, true, "ciudad is a required field"))

	t.Run("flights_valid", validateRequest(&FlightSearchRequest{
		Origen:  "Bogota",
		Destino: "Lima",
		Fecha:   "2024-05-01",
	}, false, ""))
	t.Run("flights_missing_origen", validateRequest(&FlightSearchRequest{
		Destino: "Lima",
		Fecha:   "2024-05-01",
	}, true, "origen is a required field"))
	t.Run("flights_missing_destino", validateRequest(&FlightSearchRequest{
		Origen: "Bogota",
		Fecha:  "2024-05-01",
	}, true, "destino is a required field"))
	t.Run("flights_missing_fecha", validateRequest(&FlightSearchRequest{
		Origen:  "Bogota",
		Destino: "Lima",
	}, true, "fecha is a required field"))

	t.Run("lodging_valid_without_dates", validateRequest(&LodgingSearchRequest{Ciudad: "Lima"}, false, ""))
	t.Run("lodging_missing_ciudad", validateRequest(&LodgingSearchRequest{
		FechaEntrada: "2024-05-01",
		FechaSalida:  "2024-05-05",
	}, true, "ciudad is a required field"))

	t.Run("advice_valid", validateRequest(&AdviceRequest{Destino: "Paris"}, false, ""))
	t.Run("advice_missing_destino", validateRequest(&AdviceRequest{}, true, "destino is a required field"))
}

func TestAdviceRequest_BindDefaults(t *testing.T) {
	_ = InitValidator()

	req := &AdviceRequest{Destino: "Paris"}
	if err := req.Bind(nil); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	if req.TipoViaje != DefaultTripType {
		t.Fatalf("Bind() TipoViaje = %q, want %q", req.TipoViaje, DefaultTripType)
	}

	if req.Presupuesto != DefaultBudget {
		t.Fatalf("Bind() Presupuesto = %q, want %q", req.Presupuesto, DefaultBudget)
	}

	// explicit values survive binding
	req = &AdviceRequest{Destino: "Paris", TipoViaje: "aventura", Presupuesto: "bajo"}
	if err := req.Bind(nil); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	if req.TipoViaje != "aventura" || req.Presupuesto != "bajo" {
		t.Fatalf("Bind() overwrote explicit values: %+v", req)
	}
}

func TestParamsFromStruct(t *testing.T) {
	paramsRequest := func(req interface{}, want []ToolParameter) func(t *testing.T) {
		return func(t *testing.T) {
			got := ParamsFromStruct(req)

			// descriptions are free text, compare the contract fields only
			for i := range got {
				got[i].Description = ""
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ParamsFromStruct() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("wiki", paramsRequest(WikiRequest{}, []ToolParameter{
		{Name: "ciudad", Type: "string", Required: true},
	}))

	t.Run("flights", paramsRequest(FlightSearchRequest{}, []ToolParameter{
		{Name: "origen", Type: "string", Required: true},
		{Name: "destino", Type: "string", Required: true},
		{Name: "fecha", Type: "string", Required: true},
	}))

	t.Run("lodging_optional_dates", paramsRequest(LodgingSearchRequest{}, []ToolParameter{
		{Name: "ciudad", Type: "string", Required: true},
		{Name: "fechaEntrada", Type: "string", Required: false},
		{Name: "fechaSalida", Type: "string", Required: false},
	}))

	t.Run("advice_optional_fields", paramsRequest(AdviceRequest{}, []ToolParameter{
		{Name: "destino", Type: "string", Required: true},
		{Name: "tipoViaje", Type: "string", Required: false},
		{Name: "presupuesto", Type: "string", Required: false},
	}))
}
