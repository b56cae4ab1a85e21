package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CompletedWorkOrderResult duraciones de una orden de trabajo completada,
// insumo del cálculo de eficiencia.
type CompletedWorkOrderResult struct {
	EstimatedMinutes int
	ActualMinutes    int
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard.
// Los conteos se hacen en SQL en lugar de traer colecciones completas.
type AnalyticsRepository interface {
	// CountOrdersByStatus cuenta órdenes cuyo estado está en statuses.
	CountOrdersByStatus(ctx context.Context, statuses []string) (int, error)
	// CountOrdersCompletedSince cuenta órdenes done actualizadas desde since.
	CountOrdersCompletedSince(ctx context.Context, since time.Time) (int, error)
	// CountProductsBelowStock cuenta productos cuyo stock agregado < threshold.
	CountProductsBelowStock(ctx context.Context, threshold decimal.Decimal) (int, error)
	// WorkOrdersCompletedSince devuelve las duraciones de las órdenes de
	// trabajo completadas desde since.
	WorkOrdersCompletedSince(ctx context.Context, since time.Time) ([]CompletedWorkOrderResult, error)
}
