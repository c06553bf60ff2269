package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa la cantidad de un SKU en una bodega.
// Único por (SKU, WarehouseID).
type InventoryItem struct {
	ID             string
	SKU            string
	Name           string
	Description    string
	Category       string
	Brand          string
	UnitPrice      decimal.Decimal
	VolumePerUnit  decimal.Decimal // volumen por unidad, siempre > 0
	Quantity       int
	ReorderLevel   int
	WarehouseID    string
	ExpirationDate *time.Time
	Version        int64 // control optimista de concurrencia
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalVolume = Quantity * VolumePerUnit.
func (i *InventoryItem) TotalVolume() decimal.Decimal {
	return i.VolumePerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsLowStock indica si la cantidad cayó al nivel de reorden o por debajo.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// CloneForWarehouse copia los metadatos descriptivos del ítem hacia otra bodega,
// con cantidad cero y versión nueva. Se usa cuando un traslado llega a una bodega
// que no tenía registro para el SKU.
func (i *InventoryItem) CloneForWarehouse(id, warehouseID string, now time.Time) *InventoryItem {
	clone := &InventoryItem{
		ID:            id,
		SKU:           i.SKU,
		Name:          i.Name,
		Description:   i.Description,
		Category:      i.Category,
		Brand:         i.Brand,
		UnitPrice:     i.UnitPrice,
		VolumePerUnit: i.VolumePerUnit,
		Quantity:      0,
		ReorderLevel:  i.ReorderLevel,
		WarehouseID:   warehouseID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if i.ExpirationDate != nil {
		exp := *i.ExpirationDate
		clone.ExpirationDate = &exp
	}
	return clone
}
