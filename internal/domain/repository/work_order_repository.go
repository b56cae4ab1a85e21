package repository

import "github.com/jhoicas/Manufactura-api/internal/domain/entity"

// WorkOrderRow fila del tablero de órdenes de trabajo: paso + contexto de su orden.
type WorkOrderRow struct {
	WorkOrder   entity.WorkOrder
	OrderID     string
	OrderStatus string
	ProductName string
	ProductSKU  string
}

// WorkOrderRepository puerto de persistencia para órdenes de trabajo.
type WorkOrderRepository interface {
	// CreateBatch inserta el lote de pasos derivados de la ruta estándar.
	CreateBatch(workOrders []*entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// ListByOrder devuelve los pasos de una orden en orden de creación.
	ListByOrder(orderID string) ([]*entity.WorkOrder, error)
	// List devuelve el tablero completo, opcionalmente filtrado por estado.
	List(status string, limit, offset int) ([]WorkOrderRow, error)
	Update(workOrder *entity.WorkOrder) error
}
