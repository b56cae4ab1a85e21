package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// StockLevel stock agregado de un producto (suma de su libro).
type StockLevel struct {
	ProductID   string
	ProductName string
	ProductSKU  string
	Quantity    decimal.Decimal
}

// StockLedgerRepository puerto de persistencia para el libro de stock (append-only).
type StockLedgerRepository interface {
	Create(entry *entity.StockLedgerEntry) error
	// SumByProduct devuelve el stock actual: Σ quantity_change del producto.
	SumByProduct(productID string) (decimal.Decimal, error)
	// ListByProduct devuelve el libro de un producto ascendente por fecha
	// (el orden que necesita el saldo corrido).
	ListByProduct(productID string) ([]*entity.StockLedgerEntry, error)
	// ListAll devuelve el libro completo con producto, más reciente primero.
	ListAll(limit, offset int) ([]*entity.StockLedgerEntry, error)
	// Levels devuelve el stock agregado por producto.
	Levels() ([]StockLevel, error)
}
