package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBOMItemRequest línea de componente al crear una BOM.
type CreateBOMItemRequest struct {
	ComponentID string          `json:"component_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

// CreateBOMRequest alta de lista de materiales para un producto.
type CreateBOMRequest struct {
	ProductID string                 `json:"product_id"`
	Name      string                 `json:"name"`
	Items     []CreateBOMItemRequest `json:"items"`
}

// BOMItemResponse línea de una BOM con su componente.
type BOMItemResponse struct {
	ID              string          `json:"id"`
	ComponentID     string          `json:"component_id"`
	ComponentName   string          `json:"component_name"`
	ComponentSKU    string          `json:"component_sku"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Unit            string          `json:"unit"`
}

// BOMResponse BOM completa con líneas.
type BOMResponse struct {
	ID        string            `json:"id"`
	ProductID string            `json:"product_id"`
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []BOMItemResponse `json:"items"`
}

// BOMSummaryResponse fila del navegador de BOMs.
type BOMSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	IsActive    bool      `json:"is_active"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// BOMListResponse listado del navegador de BOMs.
type BOMListResponse struct {
	Items []BOMSummaryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreatedResponse respuesta mínima de creación.
type CreatedResponse struct {
	ID string `json:"id"`
}
