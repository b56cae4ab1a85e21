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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación del puerto WorkOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador de persistencia para órdenes de trabajo.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, manufacturing_order_id, name, work_center, status,
	estimated_minutes, actual_minutes, started_at, completed_at, created_at`

// CreateBatch inserta el lote de pasos derivados de la ruta estándar.
func (r *WorkOrderRepo) CreateBatch(workOrders []*entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, w := range workOrders {
		_, err := r.q.Exec(context.Background(), query,
			w.ID, w.ManufacturingOrderID, w.Name, w.WorkCenter, w.Status,
			w.EstimatedMinutes, w.ActualMinutes, w.StartedAt, w.CompletedAt, w.CreatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert work order: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden de trabajo por ID, o nil si no existe.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	var w entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.ManufacturingOrderID, &w.Name, &w.WorkCenter, &w.Status,
		&w.EstimatedMinutes, &w.ActualMinutes, &w.StartedAt, &w.CompletedAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &w, nil
}

// ListByOrder devuelve los pasos de una orden en orden de creación.
func (r *WorkOrderRepo) ListByOrder(orderID string) ([]*entity.WorkOrder, error) {
	query := `
		SELECT ` + workOrderColumns + `
		FROM work_orders WHERE manufacturing_order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list work orders by order: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var w entity.WorkOrder
		if err := rows.Scan(&w.ID, &w.ManufacturingOrderID, &w.Name, &w.WorkCenter, &w.Status,
			&w.EstimatedMinutes, &w.ActualMinutes, &w.StartedAt, &w.CompletedAt, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// List devuelve el tablero completo con contexto de orden y producto,
// opcionalmente filtrado por estado.
func (r *WorkOrderRepo) List(status string, limit, offset int) ([]repository.WorkOrderRow, error) {
	query := `
		SELECT w.id, w.manufacturing_order_id, w.name, w.work_center, w.status,
		       w.estimated_minutes, w.actual_minutes, w.started_at, w.completed_at, w.created_at,
		       o.id, o.status, p.name, p.sku
		FROM work_orders w
		JOIN manufacturing_orders o ON o.id = w.manufacturing_order_id
		JOIN products p ON p.id = o.product_id
		WHERE $1 = '' OR w.status = $1
		ORDER BY w.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []repository.WorkOrderRow
	for rows.Next() {
		var row repository.WorkOrderRow
		if err := rows.Scan(
			&row.WorkOrder.ID, &row.WorkOrder.ManufacturingOrderID, &row.WorkOrder.Name,
			&row.WorkOrder.WorkCenter, &row.WorkOrder.Status,
			&row.WorkOrder.EstimatedMinutes, &row.WorkOrder.ActualMinutes,
			&row.WorkOrder.StartedAt, &row.WorkOrder.CompletedAt, &row.WorkOrder.CreatedAt,
			&row.OrderID, &row.OrderStatus, &row.ProductName, &row.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan work order row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update persiste el estado y los tiempos de una orden de trabajo.
func (r *WorkOrderRepo) Update(w *entity.WorkOrder) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE work_orders
		SET status = $2, actual_minutes = $3, started_at = $4, completed_at = $5
		WHERE id = $1`,
		w.ID, w.Status, w.ActualMinutes, w.StartedAt, w.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
