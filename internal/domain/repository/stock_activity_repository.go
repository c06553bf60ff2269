package repository

import (
	"context"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

// ActivityFilter criterios de consulta del historial. WarehouseID coincide con la bodega
// origen o destino de un traslado, o con la bodega del registro en el resto de tipos.
type ActivityFilter struct {
	ItemID      string
	WarehouseID string
	Type        string
	Limit       int
	Offset      int
}

// StockActivityRepository puerto append-only del historial de auditoría.
// No expone Update ni Delete. List ordena del más reciente al más antiguo.
type StockActivityRepository interface {
	Create(ctx context.Context, activity *entity.StockActivity) error
	GetByID(ctx context.Context, id string) (*entity.StockActivity, error)
	List(ctx context.Context, filter ActivityFilter) ([]*entity.StockActivity, error)
}
