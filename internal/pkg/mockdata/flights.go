// Package mockdata fabricates placeholder flight and lodging offers from
// fixed archetype tables. Prices and flight numbers come from an injected
// random source so callers can seed it deterministically in tests.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
)

const flightCurrency = "USD"

// FlightArchetype is a fixed airline slot. Only the flight-number suffix
// and the price within [MinPrice, MaxPrice) vary per request.
type FlightArchetype struct {
	Airline     string
	Code        string
	HoraSalida  string
	HoraLlegada string
	Duracion    string
	Escalas     int
	MinPrice    float64
	MaxPrice    float64
}

// FlightArchetypes holds the three airline slots every search returns.
var FlightArchetypes = []FlightArchetype{
	{
		Airline:     "Avianca",
		Code:        "AV",
		HoraSalida:  "08:30",
		HoraLlegada: "11:45",
		Duracion:    "3h 15m",
		Escalas:     0,
		MinPrice:    200,
		MaxPrice:    500,
	},
	{
		Airline:     "LATAM",
		Code:        "LA",
		HoraSalida:  "13:15",
		HoraLlegada: "17:40",
		Duracion:    "4h 25m",
		Escalas:     1,
		MinPrice:    180,
		MaxPrice:    480,
	},
	{
		Airline:     "Copa Airlines",
		Code:        "CM",
		HoraSalida:  "19:00",
		HoraLlegada: "22:10",
		Duracion:    "3h 10m",
		Escalas:     1,
		MinPrice:    220,
		MaxPrice:    520,
	},
}

// Flights generates one offer per airline archetype for the given route.
func Flights(rng *rand.Rand, origen, destino, fecha string) []dto.FlightOffer {
	offers := make([]dto.FlightOffer, len(FlightArchetypes))

	for i, arch := range FlightArchetypes {
		offers[i] = dto.FlightOffer{
			Aerolinea:   arch.Airline,
			NumeroVuelo: fmt.Sprintf("%s%d", arch.Code, rng.Intn(1000)),
			Origen:      origen,
			Destino:     destino,
			Fecha:       fecha,
			HoraSalida:  arch.HoraSalida,
			HoraLlegada: arch.HoraLlegada,
			Duracion:    arch.Duracion,
			Precio:      priceIn(rng, arch.MinPrice, arch.MaxPrice),
			Moneda:      flightCurrency,
			Escalas:     arch.Escalas,
		}
	}

	return offers
}

// priceIn returns a price in [min, max) rounded to cents.
func priceIn(rng *rand.Rand, min, max float64) float64 {
	return math.Floor((min+rng.Float64()*(max-min))*100) / 100
}
