package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntryRequest alta de un movimiento en el libro de stock.
type RegisterEntryRequest struct {
	ProductID      string          `json:"product_id"`
	QuantityChange decimal.Decimal `json:"quantity_change"` // con signo, distinto de cero
	Reason         string          `json:"reason"`
}

// LedgerEntryResponse movimiento del libro con producto y, si el listado está
// filtrado a un solo producto, su saldo corrido.
type LedgerEntryResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"product_id"`
	ProductName    string           `json:"product_name"`
	ProductSKU     string           `json:"product_sku"`
	QuantityChange decimal.Decimal  `json:"quantity_change"`
	Reason         string           `json:"reason"`
	RunningBalance *decimal.Decimal `json:"running_balance,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// LedgerListResponse libro de stock, más reciente primero.
type LedgerListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// StockLevelResponse stock agregado de un producto.
type StockLevelResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	LowStock    bool            `json:"low_stock"`
}

// StockLevelsResponse stock agregado de todos los productos.
type StockLevelsResponse struct {
	Items []StockLevelResponse `json:"items"`
}
