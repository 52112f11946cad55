package advice

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRecommendations(t *testing.T) {
	recommendationsRequest := func(destino, tipoViaje, wantFirstWord string) func(t *testing.T) {
		return func(t *testing.T) {
			got := Recommendations(destino, tipoViaje)

			assert.Len(t, got, 5)
			for _, line := range got {
				assert.NotContains(t, line, "%s")
			}

			if !strings.HasPrefix(got[0], wantFirstWord) {
				t.Fatalf("Recommendations() first line = %q, want prefix %q", got[0], wantFirstWord)
			}
		}
	}

	t.Run("business", recommendationsRequest("Madrid", "viaje de negocios", "Reserva un hotel cerca del distrito financiero"))
	t.Run("adventure", recommendationsRequest("Cusco", "aventura", "Investiga las rutas de senderismo"))
	t.Run("adventure_case_insensitive", recommendationsRequest("Cusco", "AVENTURA extrema", "Investiga las rutas de senderismo"))
	t.Run("cultural", recommendationsRequest("Roma", "cultural", "Visita los museos"))
	t.Run("cultural_variant", recommendationsRequest("Roma", "Cultura", "Visita los museos"))
	t.Run("vacation_fallback", recommendationsRequest("Cancún", "vacaciones", "Reserva tu alojamiento en Cancún"))
	t.Run("unknown_falls_back_to_general", recommendationsRequest("Tokio", "luna de miel", "Reserva tu alojamiento en Tokio"))

	t.Run("business_wins_over_adventure", func(t *testing.T) {
		// both substrings present: declaration order decides
		got := Recommendations("Lima", "negocios con aventura")
		assert.Contains(t, got[0], "distrito financiero")
	})

	t.Run("destination_interpolated", func(t *testing.T) {
		got := Recommendations("Paris", "aventura")
		for _, line := range []int{0, 2, 4} {
			assert.Contains(t, got[line], "Paris")
		}
	})

	t.Run("pure_function", func(t *testing.T) {
		first := Recommendations("Bogotá", "cultural")
		second := Recommendations("Bogotá", "cultural")

		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("Recommendations() not deterministic (-first +second):\n%s", diff)
		}
	})
}

func TestBudgetNote(t *testing.T) {
	budgetNoteRequest := func(destino, presupuesto, wantSubstring string) func(t *testing.T) {
		return func(t *testing.T) {
			got := BudgetNote(destino, presupuesto)

			assert.Contains(t, got, destino)
			assert.Contains(t, got, wantSubstring)
		}
	}

	t.Run("low", budgetNoteRequest("Paris", "bajo", "presupuesto bajo"))
	t.Run("low_case_insensitive", budgetNoteRequest("Paris", "BAJO", "presupuesto bajo"))
	t.Run("high", budgetNoteRequest("Paris", "alto", "presupuesto alto"))
	t.Run("medium", budgetNoteRequest("Paris", "medio", "presupuesto medio"))
	t.Run("unknown_falls_back_to_medium", budgetNoteRequest("Paris", "lujoso", "presupuesto medio"))
	t.Run("empty_falls_back_to_medium", budgetNoteRequest("Paris", "", "presupuesto medio"))
}
