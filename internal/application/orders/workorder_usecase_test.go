package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

func seedWorkOrder(repo *fakeWorkOrderRepo, status string) *entity.WorkOrder {
	wo := &entity.WorkOrder{
		ID:                   "wo-1",
		ManufacturingOrderID: "mo-1",
		Name:                 "Assembly",
		WorkCenter:           "Línea 1",
		Status:               status,
		EstimatedMinutes:     120,
	}
	repo.byID[wo.ID] = wo
	return wo
}

func TestWorkOrderStart_DesdePending(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedWorkOrder(repo, entity.WorkOrderStatusPending)
	uc := NewWorkOrderUseCase(repo)
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	uc.now = fixedClock(start)

	out, err := uc.Start("wo-1")

	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderStatusInProgress, out.Status)
	require.NotNil(t, out.StartedAt)
	assert.True(t, out.StartedAt.Equal(start))
}

func TestWorkOrderStart_DesdeInProgressRechazado(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedWorkOrder(repo, entity.WorkOrderStatusInProgress)
	uc := NewWorkOrderUseCase(repo)

	_, err := uc.Start("wo-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Pause acumula minutos de reloj reales desde el start, no un incremento fijo.
func TestWorkOrderPause_AcumulaMinutosReales(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	wo := seedWorkOrder(repo, entity.WorkOrderStatusInProgress)
	started := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	wo.StartedAt = &started
	wo.ActualMinutes = 10 // de una sesión anterior

	uc := NewWorkOrderUseCase(repo)
	uc.now = fixedClock(started.Add(45 * time.Minute))

	out, err := uc.Pause("wo-1")

	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderStatusPending, out.Status)
	assert.Equal(t, 55, out.ActualMinutes, "10 previos + 45 de esta sesión")
	assert.Nil(t, out.StartedAt)
	assert.Nil(t, out.CompletedAt)
}

func TestWorkOrderComplete_DesdeInProgress(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	wo := seedWorkOrder(repo, entity.WorkOrderStatusInProgress)
	started := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	wo.StartedAt = &started

	uc := NewWorkOrderUseCase(repo)
	done := started.Add(90 * time.Minute)
	uc.now = fixedClock(done)

	out, err := uc.Complete("wo-1")

	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderStatusCompleted, out.Status)
	assert.Equal(t, 90, out.ActualMinutes)
	require.NotNil(t, out.CompletedAt)
	assert.True(t, out.CompletedAt.Equal(done))
}

// La capa de datos también rechaza completar un paso que nunca se inició.
func TestWorkOrderComplete_DirectoDesdePendingRechazado(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedWorkOrder(repo, entity.WorkOrderStatusPending)
	uc := NewWorkOrderUseCase(repo)

	_, err := uc.Complete("wo-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// completed es terminal: ninguna operación lo saca de ese estado.
func TestWorkOrderCompleted_EsTerminal(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedWorkOrder(repo, entity.WorkOrderStatusCompleted)
	uc := NewWorkOrderUseCase(repo)

	_, err := uc.Start("wo-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Pause("wo-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Complete("wo-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkOrderStart_NoExiste(t *testing.T) {
	uc := NewWorkOrderUseCase(newFakeWorkOrderRepo())
	_, err := uc.Start("wo-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
