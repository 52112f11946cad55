// Package advice holds the fixed travel recommendation templates. Every
// function here is pure: same inputs, same output.
package advice

import (
	"fmt"
	"strings"
)

// tripTemplate is matched by case-insensitive substring against the trip
// type, in declaration order. The first match wins.
type tripTemplate struct {
	key   string
	lines []string
}

var tripTemplates = []tripTemplate{
	{
		key: "negocio",
		lines: []string{
			"Reserva un hotel cerca del distrito financiero de %s",
			"Verifica la disponibilidad de salas de reuniones y wifi de alta velocidad",
			"Lleva ropa formal adecuada para el clima de %s",
			"Agenda traslados al aeropuerto con anticipación",
			"Consulta los horarios comerciales locales de %s",
		},
	},
	{
		key: "aventura",
		lines: []string{
			"Investiga las rutas de senderismo y actividades al aire libre en %s",
			"Empaca calzado resistente y ropa por capas",
			"Contrata un seguro de viaje que cubra deportes de aventura en %s",
			"Reserva excursiones con operadores locales certificados",
			"Revisa el pronóstico del clima de %s antes de cada actividad",
		},
	},
	{
		key: "cultur",
		lines: []string{
			"Visita los museos y sitios históricos principales de %s",
			"Compra entradas anticipadas para evitar filas",
			"Prueba la gastronomía típica de %s en mercados locales",
			"Aprende algunas frases básicas del idioma local",
			"Consulta el calendario de festivales y eventos de %s",
		},
	},
}

var generalTemplate = []string{
	"Reserva tu alojamiento en %s con anticipación para mejores precios",
	"Revisa los requisitos de visa y documentación para %s",
	"Arma un itinerario flexible con las atracciones principales de %s",
	"Lleva una copia digital de tus documentos importantes",
	"Descarga mapas sin conexión de %s antes de viajar",
}

var budgetNotes = map[string]string{
	"bajo": "Para un presupuesto bajo en %s: prioriza hostales, transporte público y menús del día; muchas atracciones tienen días de entrada gratuita.",
	"alto": "Con un presupuesto alto en %s: considera hoteles boutique, experiencias privadas y restaurantes de autor; reserva con anticipación los más solicitados.",
}

const mediumBudgetNote = "Con un presupuesto medio en %s: combina hoteles de gama media con algunas experiencias premium y come donde comen los locales."

// Recommendations returns the five template lines for the trip type with
// the destination interpolated. Unknown trip types fall back to the
// general vacation template.
func Recommendations(destino, tipoViaje string) []string {
	needle := strings.ToLower(tipoViaje)

	lines := generalTemplate
	for _, tpl := range tripTemplates {
		if strings.Contains(needle, tpl.key) {
			lines = tpl.lines
			break
		}
	}

	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = interpolate(line, destino)
	}

	return result
}

// BudgetNote returns the note for the budget tier with the destination
// interpolated. Anything other than "bajo" or "alto" gets the medium note.
func BudgetNote(destino, presupuesto string) string {
	if note, ok := budgetNotes[strings.ToLower(presupuesto)]; ok {
		return interpolate(note, destino)
	}

	return interpolate(mediumBudgetNote, destino)
}

func interpolate(line, destino string) string {
	if !strings.Contains(line, "%s") {
		return line
	}

	args := make([]interface{}, strings.Count(line, "%s"))
	for i := range args {
		args[i] = destino
	}

	return fmt.Sprintf(line, args...)
}
