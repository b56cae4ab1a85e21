package dto

// DashboardStatsDTO contadores del dashboard, recalculados en cada petición.
type DashboardStatsDTO struct {
	ActiveOrders   int `json:"active_orders"`   // confirmed + in_progress
	CompletedToday int `json:"completed_today"` // done con updated_at >= medianoche local
	StockAlerts    int `json:"stock_alerts"`    // productos con stock < umbral
	Efficiency     int `json:"efficiency"`      // % promedio estimado/real de hoy
}
