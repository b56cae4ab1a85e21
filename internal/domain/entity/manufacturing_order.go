package entity

import "time"

// Estados de una orden de fabricación.
const (
	OrderStatusDraft      = "draft"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
)

// ManufacturingOrder orden de fabricación de un producto terminado.
// Se crea una sola vez; su estado muta durante el ciclo de vida y nunca
// se elimina físicamente.
type ManufacturingOrder struct {
	ID        string
	ProductID string
	Quantity  int // unidades enteras a producir, > 0
	Status    string
	StartDate *time.Time
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product // join opcional
}

// IsOverdue indica si la orden venció: fecha límite pasada y la orden
// sigue sin terminar ni cancelar.
func (o *ManufacturingOrder) IsOverdue(now time.Time) bool {
	if o.DueDate == nil {
		return false
	}
	if o.Status == OrderStatusDone || o.Status == OrderStatusCancelled {
		return false
	}
	return o.DueDate.Before(now)
}
