package orders

import (
	"time"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// WorkOrderUseCase transiciones y tablero de órdenes de trabajo.
// La duración real acumula minutos de reloj entre start y pause/complete
// (reemplaza los incrementos fijos simulados de la primera versión del producto).
type WorkOrderUseCase struct {
	repo repository.WorkOrderRepository
	now  func() time.Time
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(repo repository.WorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, now: time.Now}
}

// List devuelve el tablero, opcionalmente filtrado por estado.
func (uc *WorkOrderUseCase) List(status string, page dto.PageRequest) (*dto.WorkOrderBoardResponse, error) {
	if status != "" && status != entity.WorkOrderStatusPending &&
		status != entity.WorkOrderStatusInProgress && status != entity.WorkOrderStatusCompleted {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	rows, err := uc.repo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkOrderBoardRow, 0, len(rows))
	for _, row := range rows {
		wo := row.WorkOrder
		items = append(items, dto.WorkOrderBoardRow{
			WorkOrderResponse: toWorkOrderResponse(&wo),
			OrderStatus:       row.OrderStatus,
			ProductName:       row.ProductName,
			ProductSKU:        row.ProductSKU,
		})
	}
	return &dto.WorkOrderBoardResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Start pending -> in_progress; registra el instante de inicio.
func (uc *WorkOrderUseCase) Start(id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if !manufacturing.ValidWorkOrderTransition(wo.Status, entity.WorkOrderStatusInProgress) {
		return nil, domain.ErrInvalidTransition
	}
	now := uc.now()
	wo.Status = entity.WorkOrderStatusInProgress
	wo.StartedAt = &now
	if err := uc.repo.Update(wo); err != nil {
		return nil, err
	}
	resp := toWorkOrderResponse(wo)
	return &resp, nil
}

// Pause in_progress -> pending; acumula los minutos transcurridos desde start.
func (uc *WorkOrderUseCase) Pause(id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if !manufacturing.ValidWorkOrderTransition(wo.Status, entity.WorkOrderStatusPending) {
		return nil, domain.ErrInvalidTransition
	}
	now := uc.now()
	wo.ActualMinutes += elapsedMinutes(wo.StartedAt, now)
	wo.Status = entity.WorkOrderStatusPending
	wo.StartedAt = nil
	if err := uc.repo.Update(wo); err != nil {
		return nil, err
	}
	resp := toWorkOrderResponse(wo)
	return &resp, nil
}

// Complete in_progress -> completed (terminal); acumula minutos y registra el cierre.
func (uc *WorkOrderUseCase) Complete(id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if !manufacturing.ValidWorkOrderTransition(wo.Status, entity.WorkOrderStatusCompleted) {
		return nil, domain.ErrInvalidTransition
	}
	now := uc.now()
	wo.ActualMinutes += elapsedMinutes(wo.StartedAt, now)
	wo.Status = entity.WorkOrderStatusCompleted
	wo.StartedAt = nil
	wo.CompletedAt = &now
	if err := uc.repo.Update(wo); err != nil {
		return nil, err
	}
	resp := toWorkOrderResponse(wo)
	return &resp, nil
}

func (uc *WorkOrderUseCase) load(id string) (*entity.WorkOrder, error) {
	wo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	return wo, nil
}

// elapsedMinutes minutos completos entre el inicio registrado y now.
// Sin inicio registrado no hay nada que acumular.
func elapsedMinutes(startedAt *time.Time, now time.Time) int {
	if startedAt == nil {
		return 0
	}
	mins := int(now.Sub(*startedAt) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}
