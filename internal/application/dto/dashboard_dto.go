package dto

import "github.com/shopspring/decimal"

// StockSummaryResponse resumen de capacidad y stock para el dashboard (solo bodegas activas).
type StockSummaryResponse struct {
	ActiveWarehouses      int                     `json:"active_warehouses"`
	TotalMaxCapacity      decimal.Decimal         `json:"total_max_capacity"`
	TotalCurrentCapacity  decimal.Decimal         `json:"total_current_capacity"`
	UtilizationPercentage decimal.Decimal         `json:"utilization_percentage"`
	CapacityAlerts        []WarehouseResponse     `json:"capacity_alerts"`
	LowStockItems         int                     `json:"low_stock_items"`
	RecentActivities      []StockActivityResponse `json:"recent_activities"`
	DateLabel             string                  `json:"date_label"`
}
