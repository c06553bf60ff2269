package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para crear un registro de inventario (SKU en una bodega).
type CreateInventoryItemRequest struct {
	SKU            string          `json:"sku" validate:"required,min=1,max=100"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	VolumePerUnit  decimal.Decimal `json:"volume_per_unit"`
	Quantity       int             `json:"quantity" validate:"min=0"`
	ReorderLevel   int             `json:"reorder_level" validate:"min=0"`
	WarehouseID    string          `json:"warehouse_id" validate:"required"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}

// UpdateInventoryItemRequest entrada para actualizar un registro; campos nil no se modifican.
// La bodega no se cambia aquí: para mover stock se usa un traslado.
type UpdateInventoryItemRequest struct {
	SKU            *string          `json:"sku"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Brand          *string          `json:"brand"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	VolumePerUnit  *decimal.Decimal `json:"volume_per_unit"`
	Quantity       *int             `json:"quantity"`
	ReorderLevel   *int             `json:"reorder_level"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	Notes          *string          `json:"notes,omitempty"`
}

// InventoryItemResponse salida de un registro de inventario.
type InventoryItemResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	VolumePerUnit  decimal.Decimal `json:"volume_per_unit"`
	TotalVolume    decimal.Decimal `json:"total_volume"`
	Quantity       int             `json:"quantity"`
	ReorderLevel   int             `json:"reorder_level"`
	LowStock       bool            `json:"low_stock"`
	WarehouseID    string          `json:"warehouse_id"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InventoryItemListResponse lista paginada de registros.
type InventoryItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
