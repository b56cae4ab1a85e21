package manufacturing

// RoutingStep paso de la ruta estándar de fabricación.
type RoutingStep struct {
	Name             string
	WorkCenter       string
	EstimatedMinutes int
}

// standardRouting ruta fija de cuatro pasos. No existe todavía una tabla de
// operaciones por BOM; toda orden con BOM activa deriva exactamente estos pasos.
var standardRouting = [4]RoutingStep{
	{Name: "Material Staging", WorkCenter: "Almacén", EstimatedMinutes: 30},
	{Name: "Assembly", WorkCenter: "Línea 1", EstimatedMinutes: 120},
	{Name: "Quality Inspection", WorkCenter: "Laboratorio QC", EstimatedMinutes: 45},
	{Name: "Packaging", WorkCenter: "Empaque", EstimatedMinutes: 30},
}

// StandardRouting devuelve una copia de la ruta estándar en orden de ejecución.
func StandardRouting() []RoutingStep {
	steps := make([]RoutingStep, len(standardRouting))
	copy(steps, standardRouting[:])
	return steps
}
