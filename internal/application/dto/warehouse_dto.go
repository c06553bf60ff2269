package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega.
// CapacityAlertThreshold es opcional (por defecto 80).
type CreateWarehouseRequest struct {
	Name                   string           `json:"name" validate:"required,min=1,max=200"`
	Location               string           `json:"location"`
	MaxCapacity            decimal.Decimal  `json:"max_capacity"`
	CapacityAlertThreshold *decimal.Decimal `json:"capacity_alert_threshold,omitempty"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega; campos nil no se modifican.
type UpdateWarehouseRequest struct {
	Name                   *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Location               *string          `json:"location"`
	MaxCapacity            *decimal.Decimal `json:"max_capacity"`
	CapacityAlertThreshold *decimal.Decimal `json:"capacity_alert_threshold"`
	IsActive               *bool            `json:"is_active"`
}

// WarehouseResponse salida de una bodega con sus métricas derivadas.
type WarehouseResponse struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Location               string          `json:"location"`
	MaxCapacity            decimal.Decimal `json:"max_capacity"`
	CurrentCapacity        decimal.Decimal `json:"current_capacity"`
	AvailableCapacity      decimal.Decimal `json:"available_capacity"`
	CapacityAlertThreshold decimal.Decimal `json:"capacity_alert_threshold"`
	UtilizationPercentage  decimal.Decimal `json:"utilization_percentage"`
	CapacityAlert          bool            `json:"capacity_alert"`
	IsActive               bool            `json:"is_active"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
