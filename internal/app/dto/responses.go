package dto

// StatusResponse is the root status descriptor.
type StatusResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// WikiSummaryResponse maps the upstream encyclopedia summary. Imagen is
// null when the page has no thumbnail.
type WikiSummaryResponse struct {
	Titulo   string  `json:"titulo"`
	Extracto string  `json:"extracto"`
	URL      string  `json:"url"`
	Imagen   *string `json:"imagen"`
}

// WeatherResponse maps the upstream current-weather lookup.
type WeatherResponse struct {
	Ciudad           string  `json:"ciudad"`
	Pais             string  `json:"pais"`
	Temperatura      float64 `json:"temperatura"`
	SensacionTermica float64 `json:"sensacionTermica"`
	Humedad          int     `json:"humedad"`
	Condicion        string  `json:"condicion"`
	Icono            string  `json:"icono"`
}

// FlightOffer is a synthetic flight result.
type FlightOffer struct {
	Aerolinea   string  `json:"aerolinea"`
	NumeroVuelo string  `json:"numeroVuelo"`
	Origen      string  `json:"origen"`
	Destino     string  `json:"destino"`
	Fecha       string  `json:"fecha"`
	HoraSalida  string  `json:"horaSalida"`
	HoraLlegada string  `json:"horaLlegada"`
	Duracion    string  `json:"duracion"`
	Precio      float64 `json:"precio"`
	Moneda      string  `json:"moneda"`
	Escalas     int     `json:"escalas"`
}

type FlightSearchResponse struct {
	Vuelos []FlightOffer `json:"vuelos"`
}

// LodgingOffer is a synthetic lodging result.
type LodgingOffer struct {
	Nombre       string  `json:"nombre"`
	Tipo         string  `json:"tipo"`
	Ubicacion    string  `json:"ubicacion"`
	Precio       float64 `json:"precio"`
	Moneda       string  `json:"moneda"`
	PorNoche     bool    `json:"porNoche"`
	Habitaciones int     `json:"habitaciones"`
	Banos        int     `json:"banos"`
	Capacidad    int     `json:"capacidad"`
	Calificacion float64 `json:"calificacion"`
	Resenas      int     `json:"resenas"`
	Imagen       string  `json:"imagen"`
}

type LodgingSearchResponse struct {
	Hospedajes []LodgingOffer `json:"hospedajes"`
}

// AdviceResponse is the /consejos payload.
type AdviceResponse struct {
	Destino            string   `json:"destino"`
	TipoViaje          string   `json:"tipoViaje"`
	Presupuesto        string   `json:"presupuesto"`
	Recomendaciones    []string `json:"recomendaciones"`
	ConsejoPresupuesto string   `json:"consejoPresupuesto"`
}
