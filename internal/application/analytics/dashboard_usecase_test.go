package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	active     int
	doneToday  int
	alerts     int
	work       []repository.CompletedWorkOrderResult
	err        error
	sinceSeen  time.Time
	statusSeen []string
}

func (f *fakeAnalyticsRepo) CountOrdersByStatus(_ context.Context, statuses []string) (int, error) {
	f.statusSeen = statuses
	return f.active, f.err
}

func (f *fakeAnalyticsRepo) CountOrdersCompletedSince(_ context.Context, since time.Time) (int, error) {
	f.sinceSeen = since
	return f.doneToday, f.err
}

func (f *fakeAnalyticsRepo) CountProductsBelowStock(_ context.Context, _ decimal.Decimal) (int, error) {
	return f.alerts, f.err
}

func (f *fakeAnalyticsRepo) WorkOrdersCompletedSince(_ context.Context, _ time.Time) ([]repository.CompletedWorkOrderResult, error) {
	return f.work, f.err
}

func TestDashboardUseCase_GetStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		active:    4,
		doneToday: 2,
		alerts:    1,
		work: []repository.CompletedWorkOrderResult{
			{EstimatedMinutes: 120, ActualMinutes: 100},
			{EstimatedMinutes: 45, ActualMinutes: 60},
		},
	}
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time {
		return time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	}

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.ActiveOrders)
	assert.Equal(t, 2, stats.CompletedToday)
	assert.Equal(t, 1, stats.StockAlerts)
	// (120/100*100 + 45/60*100) / 2 = (120 + 75) / 2 = 97.5 -> 98
	assert.Equal(t, 98, stats.Efficiency)

	// El corte de "hoy" es la medianoche local, no las últimas 24 horas.
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), repo.sinceSeen)
	assert.ElementsMatch(t, []string{"confirmed", "in_progress"}, repo.statusSeen)
}

func TestDashboardUseCase_GetStats_SinTrabajoHoy(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{})

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	// Sin órdenes de trabajo completadas hoy la eficiencia reporta el valor de
	// referencia de planta.
	assert.Equal(t, 98, stats.Efficiency)
	assert.Zero(t, stats.ActiveOrders)
}

func TestDashboardUseCase_GetStats_Error(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{err: errors.New("conexión perdida")})

	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)
}
