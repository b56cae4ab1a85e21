package orders

import (
	"time"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// Estados válidos de una orden (validación de entrada del PATCH de estado).
var validOrderStatuses = map[string]bool{
	entity.OrderStatusDraft:      true,
	entity.OrderStatusConfirmed:  true,
	entity.OrderStatusInProgress: true,
	entity.OrderStatusDone:       true,
	entity.OrderStatusCancelled:  true,
}

// OrderUseCase listados y ciclo de vida de órdenes de fabricación.
type OrderUseCase struct {
	orderRepo     repository.ManufacturingOrderRepository
	workOrderRepo repository.WorkOrderRepository
	now           func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.ManufacturingOrderRepository, workOrderRepo repository.WorkOrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, workOrderRepo: workOrderRepo, now: time.Now}
}

// List devuelve órdenes más recientes primero, con el avance real de sus
// órdenes de trabajo (conteos del join, no valores simulados).
func (uc *OrderUseCase) List(statuses []string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	for _, s := range statuses {
		if !validOrderStatuses[s] {
			return nil, domain.ErrInvalidInput
		}
	}
	page.DefaultPage()
	rows, err := uc.orderRepo.List(statuses, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		order := row.Order
		items = append(items, toOrderResponse(&order, row.WorkOrderCount, row.CompletedWorkOrders, now))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID devuelve la orden con sus órdenes de trabajo en orden de creación,
// o nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	workOrders, err := uc.workOrderRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	completed := 0
	for _, wo := range workOrders {
		if wo.Status == entity.WorkOrderStatusCompleted {
			completed++
		}
	}
	return &dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(order, len(workOrders), completed, uc.now()),
		WorkOrders:    toWorkOrderResponses(workOrders),
	}, nil
}

// UpdateStatus aplica una transición del ciclo de vida de la orden.
// Transiciones fuera del grafo devuelven ErrInvalidTransition.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderDetailResponse, error) {
	if !validOrderStatuses[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !manufacturing.ValidOrderTransition(order.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orderRepo.UpdateStatus(id, in.Status, uc.now()); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}
