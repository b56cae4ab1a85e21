package repository

import (
	"time"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
)

// OrderSummary fila del listado de órdenes: orden + producto + avance real de
// sus órdenes de trabajo (reemplaza los conteos simulados del dashboard original).
type OrderSummary struct {
	Order               entity.ManufacturingOrder
	WorkOrderCount      int
	CompletedWorkOrders int
}

// ManufacturingOrderRepository puerto de persistencia para órdenes de fabricación.
type ManufacturingOrderRepository interface {
	Create(order *entity.ManufacturingOrder) error
	// GetByID devuelve la orden con su producto, o nil si no existe.
	GetByID(id string) (*entity.ManufacturingOrder, error)
	// List devuelve órdenes más recientes primero, opcionalmente filtradas por estado.
	List(statuses []string, limit, offset int) ([]OrderSummary, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
