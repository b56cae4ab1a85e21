package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)

// ManufacturingOrderRepo implementación del puerto ManufacturingOrderRepository
// sobre PostgreSQL (usable con pool o tx).
type ManufacturingOrderRepo struct {
	q Querier
}

// NewManufacturingOrderRepository construye el adaptador de persistencia para órdenes.
func NewManufacturingOrderRepository(q Querier) *ManufacturingOrderRepo {
	return &ManufacturingOrderRepo{q: q}
}

// Create persiste una nueva orden de fabricación.
func (r *ManufacturingOrderRepo) Create(order *entity.ManufacturingOrder) error {
	query := `
		INSERT INTO manufacturing_orders (id, product_id, quantity, status, start_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.Quantity, order.Status,
		order.StartDate, order.DueDate, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert manufacturing order: %w", err)
	}
	return nil
}

// GetByID devuelve la orden con su producto, o nil si no existe.
func (r *ManufacturingOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	query := `
		SELECT o.id, o.product_id, o.quantity, o.status, o.start_date, o.due_date, o.created_at, o.updated_at,
		       p.id, p.name, p.sku, p.created_at
		FROM manufacturing_orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1`
	var o entity.ManufacturingOrder
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProductID, &o.Quantity, &o.Status, &o.StartDate, &o.DueDate, &o.CreatedAt, &o.UpdatedAt,
		&p.ID, &p.Name, &p.SKU, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturing order: %w", err)
	}
	o.Product = &p
	return &o, nil
}

// List devuelve órdenes más recientes primero, opcionalmente filtradas por
// estado, con el conteo real de órdenes de trabajo y cuántas están completadas.
func (r *ManufacturingOrderRepo) List(statuses []string, limit, offset int) ([]repository.OrderSummary, error) {
	query := `
		SELECT o.id, o.product_id, o.quantity, o.status, o.start_date, o.due_date, o.created_at, o.updated_at,
		       p.id, p.name, p.sku, p.created_at,
		       COUNT(w.id),
		       COUNT(w.id) FILTER (WHERE w.status = 'completed')
		FROM manufacturing_orders o
		JOIN products p ON p.id = o.product_id
		LEFT JOIN work_orders w ON w.manufacturing_order_id = o.id
		WHERE cardinality($1::text[]) = 0 OR o.status = ANY($1)
		GROUP BY o.id, p.id
		ORDER BY o.created_at DESC
		LIMIT $2 OFFSET $3`
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := r.q.Query(context.Background(), query, statuses, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing orders: %w", err)
	}
	defer rows.Close()
	var list []repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		var p entity.Product
		if err := rows.Scan(
			&s.Order.ID, &s.Order.ProductID, &s.Order.Quantity, &s.Order.Status,
			&s.Order.StartDate, &s.Order.DueDate, &s.Order.CreatedAt, &s.Order.UpdatedAt,
			&p.ID, &p.Name, &p.SKU, &p.CreatedAt,
			&s.WorkOrderCount, &s.CompletedWorkOrders,
		); err != nil {
			return nil, fmt.Errorf("scan manufacturing order: %w", err)
		}
		s.Order.Product = &p
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden. La validación de transición ya
// ocurrió en el caso de uso.
func (r *ManufacturingOrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE manufacturing_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
