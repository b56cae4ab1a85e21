package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación del puerto BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador de persistencia para listas de materiales.
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// GetActiveByProduct devuelve la BOM activa del producto con sus líneas y los
// productos componentes, o nil si no tiene BOM activa.
func (r *BOMRepo) GetActiveByProduct(productID string) (*entity.BillOfMaterial, error) {
	query := `
		SELECT id, product_id, name, version, is_active, created_at
		FROM bill_of_materials WHERE product_id = $1 AND is_active`
	var bom entity.BillOfMaterial
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&bom.ID, &bom.ProductID, &bom.Name, &bom.Version, &bom.IsActive, &bom.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active bom: %w", err)
	}

	itemsQuery := `
		SELECT i.id, i.bom_id, i.component_product_id, i.quantity, i.unit,
		       p.id, p.name, p.sku, p.created_at
		FROM bom_items i
		JOIN products p ON p.id = i.component_product_id
		WHERE i.bom_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), itemsQuery, bom.ID)
	if err != nil {
		return nil, fmt.Errorf("list bom items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.BomItem
		var comp entity.Product
		if err := rows.Scan(&it.ID, &it.BomID, &it.ComponentProductID, &it.Quantity, &it.Unit,
			&comp.ID, &comp.Name, &comp.SKU, &comp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		it.Component = &comp
		bom.Items = append(bom.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &bom, nil
}

// List devuelve todas las BOMs con producto y conteo de líneas, más reciente primero.
func (r *BOMRepo) List(limit, offset int) ([]repository.BOMSummary, error) {
	query := `
		SELECT b.id, b.product_id, b.name, b.version, b.is_active, b.created_at,
		       p.id, p.name, p.sku, p.created_at,
		       COUNT(i.id)
		FROM bill_of_materials b
		JOIN products p ON p.id = b.product_id
		LEFT JOIN bom_items i ON i.bom_id = b.id
		GROUP BY b.id, p.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()
	var list []repository.BOMSummary
	for rows.Next() {
		var s repository.BOMSummary
		var p entity.Product
		if err := rows.Scan(&s.Bom.ID, &s.Bom.ProductID, &s.Bom.Name, &s.Bom.Version, &s.Bom.IsActive, &s.Bom.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.CreatedAt, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		s.Bom.Product = &p
		list = append(list, s)
	}
	return list, rows.Err()
}

// Create persiste la cabecera de una BOM. El índice parcial único sobre
// (product_id) WHERE is_active traduce la segunda BOM activa a ErrDuplicate.
func (r *BOMRepo) Create(bom *entity.BillOfMaterial) error {
	query := `
		INSERT INTO bill_of_materials (id, product_id, name, version, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		bom.ID, bom.ProductID, bom.Name, bom.Version, bom.IsActive, bom.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert bom: %w", err)
	}
	return nil
}

// CreateItems inserta las líneas de una BOM.
func (r *BOMRepo) CreateItems(items []*entity.BomItem) error {
	query := `
		INSERT INTO bom_items (id, bom_id, component_product_id, quantity, unit)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, it.BomID, it.ComponentProductID, it.Quantity, it.Unit,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert bom item: %w", err)
		}
	}
	return nil
}
