package orders

import (
	"time"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

func toOrderResponse(o *entity.ManufacturingOrder, workOrderCount, completed int, now time.Time) dto.OrderResponse {
	progress := 0
	if workOrderCount > 0 {
		progress = completed * 100 / workOrderCount
	}
	resp := dto.OrderResponse{
		ID:                  o.ID,
		ProductID:           o.ProductID,
		Quantity:            o.Quantity,
		Status:              o.Status,
		StartDate:           o.StartDate,
		DueDate:             o.DueDate,
		WorkOrderCount:      workOrderCount,
		CompletedWorkOrders: completed,
		ProgressPercentage:  progress,
		IsOverdue:           o.IsOverdue(now),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	if o.Product != nil {
		resp.ProductName = o.Product.Name
		resp.ProductSKU = o.Product.SKU
	}
	return resp
}

func toWorkOrderResponse(wo *entity.WorkOrder) dto.WorkOrderResponse {
	return dto.WorkOrderResponse{
		ID:                   wo.ID,
		ManufacturingOrderID: wo.ManufacturingOrderID,
		Name:                 wo.Name,
		WorkCenter:           wo.WorkCenter,
		Status:               wo.Status,
		EstimatedMinutes:     wo.EstimatedMinutes,
		ActualMinutes:        wo.ActualMinutes,
		StartedAt:            wo.StartedAt,
		CompletedAt:          wo.CompletedAt,
		CreatedAt:            wo.CreatedAt,
	}
}

func toWorkOrderResponses(wos []*entity.WorkOrder) []dto.WorkOrderResponse {
	out := make([]dto.WorkOrderResponse, 0, len(wos))
	for _, wo := range wos {
		out = append(out, toWorkOrderResponse(wo))
	}
	return out
}
