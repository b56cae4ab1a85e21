package manufacturing

import "github.com/shopspring/decimal"

// DefaultEfficiency valor que muestra el dashboard cuando hoy no se completó
// ninguna orden de trabajo. Es un placeholder heredado del producto, no un
// promedio real; cambiarlo es decisión de producto.
const DefaultEfficiency = 98

// CompletedWork duración estimada y real de una orden de trabajo completada.
type CompletedWork struct {
	EstimatedMinutes int
	ActualMinutes    int
}

// Efficiency promedia estimado/real × 100 sobre las órdenes de trabajo
// completadas hoy, redondeado al entero. La duración real se acota por debajo
// en 1 minuto para evitar división por cero; las entradas sin estimado se
// ignoran. Sin datos devuelve DefaultEfficiency.
func Efficiency(works []CompletedWork) int {
	hundred := decimal.NewFromInt(100)
	total := decimal.Zero
	count := 0
	for _, w := range works {
		if w.EstimatedMinutes <= 0 {
			continue
		}
		actual := w.ActualMinutes
		if actual < 1 {
			actual = 1
		}
		ratio := decimal.NewFromInt(int64(w.EstimatedMinutes)).
			Div(decimal.NewFromInt(int64(actual))).
			Mul(hundred)
		total = total.Add(ratio)
		count++
	}
	if count == 0 {
		return DefaultEfficiency
	}
	avg := total.Div(decimal.NewFromInt(int64(count))).Round(0)
	return int(avg.IntPart())
}
