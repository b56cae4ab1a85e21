package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de orden de fabricación.
type CreateOrderRequest struct {
	ProductID string     `json:"product_id"`
	Quantity  int        `json:"quantity"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
}

// OrderResponse orden de fabricación con avance real de sus pasos.
type OrderResponse struct {
	ID                  string     `json:"id"`
	ProductID           string     `json:"product_id"`
	ProductName         string     `json:"product_name,omitempty"`
	ProductSKU          string     `json:"product_sku,omitempty"`
	Quantity            int        `json:"quantity"`
	Status              string     `json:"status"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	WorkOrderCount      int        `json:"work_order_count"`
	CompletedWorkOrders int        `json:"completed_work_orders"`
	ProgressPercentage  int        `json:"progress_percentage"`
	IsOverdue           bool       `json:"is_overdue"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// OrderDetailResponse orden con sus órdenes de trabajo en orden de creación.
type OrderDetailResponse struct {
	OrderResponse
	WorkOrders []WorkOrderResponse `json:"work_orders"`
}

// OrderListResponse listado del dashboard de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// UpdateOrderStatusRequest transición de estado de la orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CheckAvailabilityRequest verificación de materiales antes de crear una orden.
type CheckAvailabilityRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// MissingItemResponse faltante de un componente.
type MissingItemResponse struct {
	Name      string          `json:"name"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
}

// AvailabilityResponse resultado de la verificación de disponibilidad.
type AvailabilityResponse struct {
	Available    bool                  `json:"available"`
	MissingItems []MissingItemResponse `json:"missing_items"`
}
