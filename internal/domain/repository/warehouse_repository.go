package repository

import (
	"context"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

// WarehouseFilter criterios de listado de bodegas.
type WarehouseFilter struct {
	ActiveOnly bool
	Limit      int
	Offset     int
}

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// GetByID y GetByName devuelven (nil, nil) cuando no existe.
// Update aplica control optimista: falla con domain.ErrConflict si Version no coincide
// con la almacenada y, si tiene éxito, incrementa warehouse.Version.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	GetByName(ctx context.Context, name string) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	List(ctx context.Context, filter WarehouseFilter) ([]*entity.Warehouse, error)
	// Delete elimina la bodega y los registros de inventario (en cero) que aún la referencien.
	// Solo borra si la versión coincide con la leída y la capacidad actual sigue en cero:
	// domain.ErrConflict si otra operación la modificó entretanto.
	Delete(ctx context.Context, warehouse *entity.Warehouse) error
}
