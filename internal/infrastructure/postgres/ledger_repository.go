package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación del puerto StockLedgerRepository sobre
// PostgreSQL. El libro es append-only: solo INSERT y SELECT.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador de persistencia para el libro de stock.
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// Create agrega un movimiento al libro.
func (r *StockLedgerRepo) Create(entry *entity.StockLedgerEntry) error {
	query := `
		INSERT INTO stock_ledger (id, product_id, quantity_change, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.QuantityChange, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// SumByProduct devuelve el stock actual del producto: Σ quantity_change.
func (r *StockLedgerRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity_change), 0) FROM stock_ledger WHERE product_id = $1`,
		productID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger: %w", err)
	}
	return sum, nil
}

// ListByProduct devuelve el libro de un producto ascendente por fecha, el
// orden que necesita el saldo corrido.
func (r *StockLedgerRepo) ListByProduct(productID string) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT l.id, l.product_id, l.quantity_change, l.reason, l.created_at,
		       p.id, p.name, p.sku, p.created_at
		FROM stock_ledger l
		JOIN products p ON p.id = l.product_id
		WHERE l.product_id = $1
		ORDER BY l.created_at, l.id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list ledger by product: %w", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

// ListAll devuelve el libro completo con producto, más reciente primero.
func (r *StockLedgerRepo) ListAll(limit, offset int) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT l.id, l.product_id, l.quantity_change, l.reason, l.created_at,
		       p.id, p.name, p.sku, p.created_at
		FROM stock_ledger l
		JOIN products p ON p.id = l.product_id
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

// Levels devuelve el stock agregado por producto. Productos sin movimientos
// aparecen con cantidad cero.
func (r *StockLedgerRepo) Levels() ([]repository.StockLevel, error) {
	query := `
		SELECT p.id, p.name, p.sku, COALESCE(SUM(l.quantity_change), 0)
		FROM products p
		LEFT JOIN stock_ledger l ON l.product_id = p.id
		GROUP BY p.id
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevel
	for rows.Next() {
		var lv repository.StockLevel
		if err := rows.Scan(&lv.ProductID, &lv.ProductName, &lv.ProductSKU, &lv.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, lv)
	}
	return list, rows.Err()
}

type ledgerRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanLedgerEntries(rows ledgerRows) ([]*entity.StockLedgerEntry, error) {
	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		var p entity.Product
		if err := rows.Scan(&e.ID, &e.ProductID, &e.QuantityChange, &e.Reason, &e.CreatedAt,
			&p.ID, &p.Name, &p.SKU, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Product = &p
		list = append(list, &e)
	}
	return list, rows.Err()
}
