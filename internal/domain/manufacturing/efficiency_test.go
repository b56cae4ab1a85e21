package manufacturing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
)

func TestEfficiency_PromedioRedondeado(t *testing.T) {
	works := []manufacturing.CompletedWork{
		{EstimatedMinutes: 120, ActualMinutes: 100}, // 120%
		{EstimatedMinutes: 45, ActualMinutes: 60},   // 75%
	}
	// (120 + 75) / 2 = 97.5 → 98
	assert.Equal(t, 98, manufacturing.Efficiency(works))
}

// Duración real 0 se acota en 1 minuto para no dividir por cero.
func TestEfficiency_RealAcotadoEnUno(t *testing.T) {
	works := []manufacturing.CompletedWork{
		{EstimatedMinutes: 30, ActualMinutes: 0},
	}
	assert.Equal(t, 3000, manufacturing.Efficiency(works))
}

// Sin datos el dashboard muestra el placeholder 98.
func TestEfficiency_SinDatosDevuelvePlaceholder(t *testing.T) {
	assert.Equal(t, manufacturing.DefaultEfficiency, manufacturing.Efficiency(nil))
}

// Entradas sin estimado se ignoran; si todas se ignoran aplica el placeholder.
func TestEfficiency_IgnoraSinEstimado(t *testing.T) {
	works := []manufacturing.CompletedWork{
		{EstimatedMinutes: 0, ActualMinutes: 50},
		{EstimatedMinutes: 60, ActualMinutes: 60}, // 100%
	}
	assert.Equal(t, 100, manufacturing.Efficiency(works))

	soloInvalidas := []manufacturing.CompletedWork{{EstimatedMinutes: 0, ActualMinutes: 10}}
	assert.Equal(t, manufacturing.DefaultEfficiency, manufacturing.Efficiency(soloInvalidas))
}
