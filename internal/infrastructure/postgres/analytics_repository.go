package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de operaciones.
// Los agregados se calculan en SQL; a la aplicación solo viajan conteos y
// duraciones, nunca colecciones completas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountOrdersByStatus cuenta órdenes cuyo estado está en statuses.
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, statuses []string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM manufacturing_orders WHERE status = ANY($1)`,
		statuses,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountOrdersByStatus: %w", err)
	}
	return n, nil
}

// CountOrdersCompletedSince cuenta órdenes done cuyo último cambio fue desde since.
func (r *AnalyticsRepo) CountOrdersCompletedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM manufacturing_orders WHERE status = $1 AND updated_at >= $2`,
		entity.OrderStatusDone, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountOrdersCompletedSince: %w", err)
	}
	return n, nil
}

// CountProductsBelowStock cuenta productos cuyo stock agregado está bajo el
// umbral. Productos sin movimientos cuentan: su stock es cero.
func (r *AnalyticsRepo) CountProductsBelowStock(ctx context.Context, threshold decimal.Decimal) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM (
		    SELECT p.id
		    FROM products p
		    LEFT JOIN stock_ledger l ON l.product_id = p.id
		    GROUP BY p.id
		    HAVING COALESCE(SUM(l.quantity_change), 0) < $1
		) low`
	var n int
	if err := r.pool.QueryRow(ctx, query, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountProductsBelowStock: %w", err)
	}
	return n, nil
}

// WorkOrdersCompletedSince devuelve las duraciones de las órdenes de trabajo
// completadas desde since, insumo del cálculo de eficiencia.
func (r *AnalyticsRepo) WorkOrdersCompletedSince(ctx context.Context, since time.Time) ([]repository.CompletedWorkOrderResult, error) {
	const query = `
		SELECT estimated_minutes, actual_minutes
		FROM work_orders
		WHERE status = $1 AND completed_at >= $2`
	rows, err := r.pool.Query(ctx, query, entity.WorkOrderStatusCompleted, since)
	if err != nil {
		return nil, fmt.Errorf("analytics.WorkOrdersCompletedSince: %w", err)
	}
	defer rows.Close()

	var results []repository.CompletedWorkOrderResult
	for rows.Next() {
		var row repository.CompletedWorkOrderResult
		if err := rows.Scan(&row.EstimatedMinutes, &row.ActualMinutes); err != nil {
			return nil, fmt.Errorf("scan completed work order: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
