package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillOfMaterial lista de materiales de un producto. A lo sumo una BOM activa
// por producto; el índice parcial único de la BD garantiza el invariante.
type BillOfMaterial struct {
	ID        string
	ProductID string
	Name      string
	Version   string // etiqueta, ej. "1.0"
	IsActive  bool
	CreatedAt time.Time

	Product *Product  // join opcional
	Items   []BomItem // líneas de componentes (el orden no es significativo)
}

// BomItem línea de una BOM: componente y cantidad requerida por unidad producida.
type BomItem struct {
	ID                 string
	BomID              string
	ComponentProductID string
	Quantity           decimal.Decimal // requerida por unidad, siempre positiva
	Unit               string          // und, kg, m, ...

	Component *Product // join opcional
}
