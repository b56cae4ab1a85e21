// Package manufacturing contiene los servicios de dominio puros de la planta:
// disponibilidad de materiales, saldo corrido del libro de stock, ruta
// estándar de fabricación, grafo de transiciones y eficiencia.
package manufacturing

import "github.com/shopspring/decimal"

// ComponentRequirement componente de una BOM con su cantidad por unidad producida.
type ComponentRequirement struct {
	ComponentProductID string
	Name               string
	QuantityPerUnit    decimal.Decimal
}

// MissingItem faltante detectado en una verificación de disponibilidad.
type MissingItem struct {
	Name      string
	Required  decimal.Decimal
	Available decimal.Decimal
}

// AvailabilityResult resultado de la verificación: disponible solo si no hay faltantes.
type AvailabilityResult struct {
	Available    bool
	MissingItems []MissingItem
}

// CheckAvailability calcula, para cada componente, requerido = cantidad por unidad ×
// unidades a producir y lo compara contra el stock actual del componente.
// stocks mapea ComponentProductID -> stock actual; un componente sin entrada cuenta como cero.
// Sin efectos secundarios: la lectura del stock es responsabilidad del llamador.
func CheckAvailability(items []ComponentRequirement, quantityToProduce int, stocks map[string]decimal.Decimal) AvailabilityResult {
	qty := decimal.NewFromInt(int64(quantityToProduce))
	missing := []MissingItem{}
	for _, item := range items {
		required := item.QuantityPerUnit.Mul(qty)
		available := stocks[item.ComponentProductID]
		if available.LessThan(required) {
			missing = append(missing, MissingItem{
				Name:      item.Name,
				Required:  required,
				Available: available,
			})
		}
	}
	return AvailabilityResult{
		Available:    len(missing) == 0,
		MissingItems: missing,
	}
}
