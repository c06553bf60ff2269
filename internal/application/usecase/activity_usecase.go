package usecase

import (
	"context"
	"fmt"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// ActivityUseCase consultas de solo lectura sobre el historial de stock.
type ActivityUseCase struct {
	repo repository.StockActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.StockActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// ActivityListParams filtros del historial.
type ActivityListParams struct {
	ItemID      string
	WarehouseID string
	Type        string
	dto.PageRequest
}

// List devuelve el historial filtrado, del más reciente al más antiguo.
func (uc *ActivityUseCase) List(ctx context.Context, params ActivityListParams) (*dto.StockActivityListResponse, error) {
	if params.Type != "" && !entity.IsValidActivityType(params.Type) {
		return nil, fmt.Errorf("%w: unknown activity type %q", domain.ErrInvalidInput, params.Type)
	}
	params.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ActivityFilter{
		ItemID:      params.ItemID,
		WarehouseID: params.WarehouseID,
		Type:        params.Type,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	items := make([]dto.StockActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.FromStockActivity(a))
	}
	return &dto.StockActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: params.Limit, Offset: params.Offset},
	}, nil
}

// ListByItem historial de un registro (sigue disponible tras eliminarlo).
func (uc *ActivityUseCase) ListByItem(ctx context.Context, itemID string, page dto.PageRequest) (*dto.StockActivityListResponse, error) {
	return uc.List(ctx, ActivityListParams{ItemID: itemID, PageRequest: page})
}

// ListByWarehouse historial donde la bodega es origen, destino o dueña del registro.
func (uc *ActivityUseCase) ListByWarehouse(ctx context.Context, warehouseID string, page dto.PageRequest) (*dto.StockActivityListResponse, error) {
	return uc.List(ctx, ActivityListParams{WarehouseID: warehouseID, PageRequest: page})
}

// GetByID obtiene una actividad.
func (uc *ActivityUseCase) GetByID(ctx context.Context, id string) (*dto.StockActivityResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: activity not found", domain.ErrNotFound)
	}
	out := dto.FromStockActivity(a)
	return &out, nil
}
