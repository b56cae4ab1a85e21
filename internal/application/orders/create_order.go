package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/manufacturing"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// CreateOrderUseCase crea la orden de fabricación y deriva sus órdenes de
// trabajo desde la ruta estándar, todo dentro de una transacción.
type CreateOrderUseCase struct {
	tx  TxRunner
	now func() time.Time
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(tx TxRunner) *CreateOrderUseCase {
	return &CreateOrderUseCase{tx: tx, now: time.Now}
}

// Create inserta la orden con estado confirmed y, si el producto tiene BOM
// activa, los cuatro pasos de la ruta estándar en estado pending. Un producto
// sin BOM activa produce una orden válida con cero órdenes de trabajo.
func (uc *CreateOrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderDetailResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.StartDate != nil && in.DueDate != nil && in.DueDate.Before(*in.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	order := &entity.ManufacturingOrder{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Status:    entity.OrderStatusConfirmed,
		StartDate: in.StartDate,
		DueDate:   in.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var workOrders []*entity.WorkOrder
	err := uc.tx.Run(ctx, func(
		orderRepo repository.ManufacturingOrderRepository,
		workOrderRepo repository.WorkOrderRepository,
		bomRepo repository.BOMRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		bom, err := bomRepo.GetActiveByProduct(in.ProductID)
		if err != nil {
			return err
		}
		if bom == nil {
			return nil
		}
		for _, step := range manufacturing.StandardRouting() {
			workOrders = append(workOrders, &entity.WorkOrder{
				ID:                   uuid.New().String(),
				ManufacturingOrderID: order.ID,
				Name:                 step.Name,
				WorkCenter:           step.WorkCenter,
				Status:               entity.WorkOrderStatusPending,
				EstimatedMinutes:     step.EstimatedMinutes,
				CreatedAt:            now,
			})
		}
		return workOrderRepo.CreateBatch(workOrders)
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(order, len(workOrders), 0, now),
		WorkOrders:    toWorkOrderResponses(workOrders),
	}
	return resp, nil
}
