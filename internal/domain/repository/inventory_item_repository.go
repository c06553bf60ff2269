package repository

import (
	"context"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

// ItemLookup resultado explícito de buscar un registro por (SKU, bodega): Found o NotFound.
type ItemLookup struct {
	item *entity.InventoryItem
}

// Found construye un resultado con registro.
func Found(item *entity.InventoryItem) ItemLookup { return ItemLookup{item: item} }

// NotFound construye un resultado vacío.
func NotFound() ItemLookup { return ItemLookup{} }

// Item devuelve el registro y si fue encontrado.
func (l ItemLookup) Item() (*entity.InventoryItem, bool) {
	return l.item, l.item != nil
}

// ItemFilter criterios de listado de registros de inventario.
type ItemFilter struct {
	WarehouseID  string
	SKU          string
	Category     string
	LowStockOnly bool
	Limit        int
	Offset       int
}

// InventoryItemRepository define el puerto de persistencia del ledger de inventario.
// Usado dentro de transacciones para garantizar consistencia cantidad/capacidad/auditoría.
type InventoryItemRepository interface {
	// Create falla con domain.ErrDuplicate si ya existe el par (SKU, bodega).
	Create(ctx context.Context, item *entity.InventoryItem) error
	// GetByID devuelve (nil, nil) cuando no existe.
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	FindBySKUAndWarehouse(ctx context.Context, sku, warehouseID string) (ItemLookup, error)
	// Update aplica control optimista (domain.ErrConflict) e incrementa item.Version.
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ItemFilter) ([]*entity.InventoryItem, error)
}
