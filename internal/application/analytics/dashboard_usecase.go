// Package analytics contiene el caso de uso de agregados para el dashboard de
// operaciones: órdenes activas, completadas hoy, alertas de stock y eficiencia.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// DashboardUseCase orquesta las consultas agregadas del dashboard y aplica las
// reglas de negocio:
//   - Órdenes activas: estado confirmed o in_progress.
//   - Completadas hoy: órdenes done desde la medianoche local.
//   - Alertas de stock: productos con stock agregado bajo el umbral.
//   - Eficiencia: estimado/real de las órdenes de trabajo completadas hoy.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetStats devuelve las cuatro métricas del dashboard. Las consultas son
// independientes, así que corren en paralelo.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	threshold := decimal.NewFromInt(manufacturing.LowStockThreshold)

	type countResult struct {
		n   int
		err error
	}
	type workResult struct {
		rows []repository.CompletedWorkOrderResult
		err  error
	}

	activeChan := make(chan countResult, 1)
	doneChan := make(chan countResult, 1)
	alertChan := make(chan countResult, 1)
	workChan := make(chan workResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountOrdersByStatus(ctx, []string{
			entity.OrderStatusConfirmed, entity.OrderStatusInProgress,
		})
		activeChan <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersCompletedSince(ctx, midnight)
		doneChan <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountProductsBelowStock(ctx, threshold)
		alertChan <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.WorkOrdersCompletedSince(ctx, midnight)
		workChan <- workResult{rows, err}
	}()

	active := <-activeChan
	done := <-doneChan
	alerts := <-alertChan
	work := <-workChan

	if active.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes activas: %w", active.err)
	}
	if done.err != nil {
		return nil, fmt.Errorf("dashboard: completadas hoy: %w", done.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertas de stock: %w", alerts.err)
	}
	if work.err != nil {
		return nil, fmt.Errorf("dashboard: eficiencia: %w", work.err)
	}

	completed := make([]manufacturing.CompletedWork, 0, len(work.rows))
	for _, r := range work.rows {
		completed = append(completed, manufacturing.CompletedWork{
			EstimatedMinutes: r.EstimatedMinutes,
			ActualMinutes:    r.ActualMinutes,
		})
	}

	return &dto.DashboardStatsDTO{
		ActiveOrders:   active.n,
		CompletedToday: done.n,
		StockAlerts:    alerts.n,
		Efficiency:     manufacturing.Efficiency(completed),
	}, nil
}
