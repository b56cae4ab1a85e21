package manufacturing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Escenario de referencia: BOM que requiere 2×componentA por unidad,
// producir 5 unidades, stock de componentA = 8 → faltante {req 10, disp 8}.
func TestCheckAvailability_FaltanteDetectado(t *testing.T) {
	items := []manufacturing.ComponentRequirement{
		{ComponentProductID: "comp-a", Name: "componentA", QuantityPerUnit: d(2)},
	}
	stocks := map[string]decimal.Decimal{"comp-a": d(8)}

	res := manufacturing.CheckAvailability(items, 5, stocks)

	assert.False(t, res.Available)
	require.Len(t, res.MissingItems, 1)
	assert.Equal(t, "componentA", res.MissingItems[0].Name)
	assert.True(t, res.MissingItems[0].Required.Equal(d(10)), "requerido debe ser 2×5=10")
	assert.True(t, res.MissingItems[0].Available.Equal(d(8)))
}

// available == true sii todo componente tiene stock >= cantidad × unidades.
func TestCheckAvailability_TodoDisponible(t *testing.T) {
	items := []manufacturing.ComponentRequirement{
		{ComponentProductID: "comp-a", Name: "componentA", QuantityPerUnit: d(2)},
		{ComponentProductID: "comp-b", Name: "componentB", QuantityPerUnit: decimal.RequireFromString("0.5")},
	}
	stocks := map[string]decimal.Decimal{
		"comp-a": d(10),
		"comp-b": decimal.RequireFromString("2.5"),
	}

	res := manufacturing.CheckAvailability(items, 5, stocks)

	assert.True(t, res.Available)
	assert.Empty(t, res.MissingItems)
}

// Stock exactamente igual al requerido no es faltante (la comparación es estricta <).
func TestCheckAvailability_StockExacto(t *testing.T) {
	items := []manufacturing.ComponentRequirement{
		{ComponentProductID: "comp-a", Name: "componentA", QuantityPerUnit: d(2)},
	}
	stocks := map[string]decimal.Decimal{"comp-a": d(10)}

	res := manufacturing.CheckAvailability(items, 5, stocks)
	assert.True(t, res.Available)
}

// Un componente sin entrada en el mapa de stocks cuenta como stock cero.
func TestCheckAvailability_ComponenteSinLedger(t *testing.T) {
	items := []manufacturing.ComponentRequirement{
		{ComponentProductID: "comp-x", Name: "componentX", QuantityPerUnit: d(1)},
	}

	res := manufacturing.CheckAvailability(items, 1, map[string]decimal.Decimal{})

	assert.False(t, res.Available)
	require.Len(t, res.MissingItems, 1)
	assert.True(t, res.MissingItems[0].Available.IsZero())
}

// Sin componentes (BOM vacía) siempre hay disponibilidad.
func TestCheckAvailability_SinComponentes(t *testing.T) {
	res := manufacturing.CheckAvailability(nil, 100, nil)
	assert.True(t, res.Available)
	assert.Empty(t, res.MissingItems)
}
