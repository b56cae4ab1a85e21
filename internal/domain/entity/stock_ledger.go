package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLedgerEntry evento append-only del libro de stock. El stock actual
// de un producto nunca se almacena: es la suma de sus quantity_change.
type StockLedgerEntry struct {
	ID             string
	ProductID      string
	QuantityChange decimal.Decimal // con signo: positivo entra, negativo sale
	Reason         string
	CreatedAt      time.Time

	Product *Product // join opcional
}
