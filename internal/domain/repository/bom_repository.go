package repository

import "github.com/jhoicas/Manufactura-api/internal/domain/entity"

// BOMSummary fila del listado de BOMs: BOM + producto + número de líneas.
type BOMSummary struct {
	Bom       entity.BillOfMaterial
	ItemCount int
}

// BOMRepository puerto de persistencia para listas de materiales.
type BOMRepository interface {
	// GetActiveByProduct devuelve la BOM activa del producto con sus líneas y
	// los productos componentes, o nil si el producto no tiene BOM activa.
	GetActiveByProduct(productID string) (*entity.BillOfMaterial, error)
	// List devuelve todas las BOMs con producto y conteo de líneas, más reciente primero.
	List(limit, offset int) ([]BOMSummary, error)
	Create(bom *entity.BillOfMaterial) error
	CreateItems(items []*entity.BomItem) error
}
