package entity

import "time"

// Estados de una orden de trabajo.
const (
	WorkOrderStatusPending    = "pending"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusCompleted  = "completed" // terminal
)

// WorkOrder paso de ruta de una orden de fabricación. Se crean en lote
// a partir de la ruta estándar de cuatro pasos; el orden de visualización
// es el orden de creación (no hay modelo de dependencias entre pasos).
type WorkOrder struct {
	ID                   string
	ManufacturingOrderID string
	Name                 string
	WorkCenter           string
	Status               string
	EstimatedMinutes     int
	ActualMinutes        int // acumulado real entre start y pause/complete
	StartedAt            *time.Time
	CompletedAt          *time.Time
	CreatedAt            time.Time
}
