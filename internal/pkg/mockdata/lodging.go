package mockdata

import (
	"fmt"
	"math/rand"

	"github.com/jarondonp/mcp-travel-assistant/internal/app/dto"
)

const lodgingCurrency = "USD"

// LodgingArchetype is a fixed lodging slot. Only the nightly price within
// [MinPrice, MaxPrice) varies per request.
type LodgingArchetype struct {
	Nombre       string
	Tipo         string
	Zona         string
	Habitaciones int
	Banos        int
	Capacidad    int
	Calificacion float64
	Resenas      int
	Imagen       string
	MinPrice     float64
	MaxPrice     float64
}

// LodgingArchetypes holds the three lodging slots every search returns.
var LodgingArchetypes = []LodgingArchetype{
	{
		Nombre:       "Apartamento moderno en el centro",
		Tipo:         "apartamento",
		Zona:         "Centro",
		Habitaciones: 2,
		Banos:        1,
		Capacidad:    4,
		Calificacion: 4.7,
		Resenas:      128,
		Imagen:       "https://picsum.photos/seed/apartamento/400/300",
		MinPrice:     50,
		MaxPrice:     150,
	},
	{
		Nombre:       "Hotel Plaza Real",
		Tipo:         "hotel",
		Zona:         "Zona turística",
		Habitaciones: 1,
		Banos:        1,
		Capacidad:    2,
		Calificacion: 4.5,
		Resenas:      342,
		Imagen:       "https://picsum.photos/seed/hotel/400/300",
		MinPrice:     80,
		MaxPrice:     230,
	},
	{
		Nombre:       "Casa amplia con jardín",
		Tipo:         "casa",
		Zona:         "Zona residencial",
		Habitaciones: 3,
		Banos:        2,
		Capacidad:    6,
		Calificacion: 4.8,
		Resenas:      87,
		Imagen:       "https://picsum.photos/seed/casa/400/300",
		MinPrice:     120,
		MaxPrice:     320,
	},
}

// Lodgings generates one offer per lodging archetype for the given city.
func Lodgings(rng *rand.Rand, ciudad string) []dto.LodgingOffer {
	offers := make([]dto.LodgingOffer, len(LodgingArchetypes))

	for i, arch := range LodgingArchetypes {
		offers[i] = dto.LodgingOffer{
			Nombre:       arch.Nombre,
			Tipo:         arch.Tipo,
			Ubicacion:    fmt.Sprintf("%s, %s", arch.Zona, ciudad),
			Precio:       priceIn(rng, arch.MinPrice, arch.MaxPrice),
			Moneda:       lodgingCurrency,
			PorNoche:     true,
			Habitaciones: arch.Habitaciones,
			Banos:        arch.Banos,
			Capacidad:    arch.Capacidad,
			Calificacion: arch.Calificacion,
			Resenas:      arch.Resenas,
			Imagen:       arch.Imagen,
		}
	}

	return offers
}
