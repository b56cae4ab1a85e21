package orders

import (
	"context"

	"github.com/jhoicas/Manufactura-api/internal/domain/entity"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la orden y sus órdenes de
// trabajo derivadas se apliquen como una sola unidad (antes eran dos
// escrituras sueltas con una ventana de inconsistencia documentada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.ManufacturingOrderRepository,
		workOrderRepo repository.WorkOrderRepository,
		bomRepo repository.BOMRepository,
	) error) error
}

// OrderPDFGenerator puerto para la hoja de ruta (traveler) de una orden.
type OrderPDFGenerator interface {
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.ManufacturingOrder,
		bom *entity.BillOfMaterial,
		workOrders []*entity.WorkOrder,
	) ([]byte, error)
}
