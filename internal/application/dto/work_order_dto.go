package dto

import "time"

// WorkOrderResponse paso de ruta de una orden de fabricación.
type WorkOrderResponse struct {
	ID                   string     `json:"id"`
	ManufacturingOrderID string     `json:"manufacturing_order_id"`
	Name                 string     `json:"name"`
	WorkCenter           string     `json:"work_center"`
	Status               string     `json:"status"`
	EstimatedMinutes     int        `json:"estimated_minutes"`
	ActualMinutes        int        `json:"actual_minutes"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// WorkOrderBoardRow fila del tablero: paso + contexto de su orden y producto.
type WorkOrderBoardRow struct {
	WorkOrderResponse
	OrderStatus string `json:"order_status"`
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
}

// WorkOrderBoardResponse tablero de órdenes de trabajo.
type WorkOrderBoardResponse struct {
	Items []WorkOrderBoardRow `json:"items"`
	Page  PageResponse        `json:"page"`
}
