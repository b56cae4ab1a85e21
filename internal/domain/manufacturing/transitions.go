package manufacturing

import "github.com/jhoicas/Manufactura-api/internal/domain/entity"

// Grafo de transiciones de una orden de trabajo:
// pending -> in_progress (start), in_progress -> pending (pause),
// in_progress -> completed (complete). completed es terminal.
var workOrderTransitions = map[string][]string{
	entity.WorkOrderStatusPending:    {entity.WorkOrderStatusInProgress},
	entity.WorkOrderStatusInProgress: {entity.WorkOrderStatusPending, entity.WorkOrderStatusCompleted},
	entity.WorkOrderStatusCompleted:  {},
}

// ValidWorkOrderTransition indica si la transición from -> to está permitida.
// Se valida en el servidor; la UI no es la única barrera.
func ValidWorkOrderTransition(from, to string) bool {
	for _, next := range workOrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Grafo de transiciones de una orden de fabricación. cancelled es alcanzable
// desde cualquier estado no terminal; done y cancelled son terminales.
var orderTransitions = map[string][]string{
	entity.OrderStatusDraft:      {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed:  {entity.OrderStatusInProgress, entity.OrderStatusCancelled},
	entity.OrderStatusInProgress: {entity.OrderStatusDone, entity.OrderStatusCancelled},
	entity.OrderStatusDone:       {},
	entity.OrderStatusCancelled:  {},
}

// ValidOrderTransition indica si la transición de estado de la orden está permitida.
func ValidOrderTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
