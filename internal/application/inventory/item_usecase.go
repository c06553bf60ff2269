package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	stock "github.com/kurbonovm/mktekhub-sub000/internal/domain/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// ItemUseCase CRUD de registros de inventario. Crear, editar y eliminar un registro
// mueven la capacidad de su bodega y dejan auditoría en la misma transacción.
type ItemUseCase struct {
	engine
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(d Deps) *ItemUseCase {
	return &ItemUseCase{engine: newEngine(d)}
}

// ItemListParams filtros de listado expuestos a transporte.
type ItemListParams struct {
	WarehouseID  string
	SKU          string
	Category     string
	LowStockOnly bool
	dto.PageRequest
}

// Create da de alta el SKU en una bodega activa; la cantidad inicial queda como RECEIVE 0 → qty.
func (uc *ItemUseCase) Create(ctx context.Context, performerID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	ctx, span := uc.startSpan(ctx, "inventory.CreateItem",
		attribute.String("inventory.sku", in.SKU),
		attribute.String("inventory.warehouse_id", in.WarehouseID),
	)
	res, err := uc.create(ctx, performerID, in)
	endSpan(span, err)
	return res, err
}

func (uc *ItemUseCase) create(ctx context.Context, performerID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	switch {
	case in.SKU == "" || in.Name == "" || in.WarehouseID == "":
		return nil, fmt.Errorf("%w: sku, name and warehouse_id are required", domain.ErrInvalidInput)
	case in.Quantity < 0:
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	case in.ReorderLevel < 0:
		return nil, fmt.Errorf("%w: reorder level must not be negative", domain.ErrInvalidInput)
	case !in.VolumePerUnit.IsPositive():
		return nil, fmt.Errorf("%w: volume per unit must be positive", domain.ErrInvalidInput)
	case in.UnitPrice.IsNegative():
		return nil, fmt.Errorf("%w: unit price must not be negative", domain.ErrInvalidInput)
	}
	performer, err := uc.resolvePerformer(ctx, performerID)
	if err != nil {
		return nil, err
	}

	var (
		item     *entity.InventoryItem
		activity *entity.StockActivity
	)
	err = uc.runTx(ctx, func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.StockActivityRepository,
	) error {
		item, activity = nil, nil

		wh, err := warehouseRepo.GetByID(ctx, in.WarehouseID)
		if err != nil {
			return fmt.Errorf("get warehouse: %w", err)
		}
		if wh == nil {
			return notFound("warehouse not found")
		}
		if !wh.IsActive {
			return fmt.Errorf("%w: warehouse not active", domain.ErrInvalidOperation)
		}
		lookup, err := itemRepo.FindBySKUAndWarehouse(ctx, in.SKU, in.WarehouseID)
		if err != nil {
			return fmt.Errorf("find item: %w", err)
		}
		if _, ok := lookup.Item(); ok {
			return fmt.Errorf("%w: item with sku %s already exists in warehouse", domain.ErrDuplicate, in.SKU)
		}

		now := uc.now()
		created := &entity.InventoryItem{
			ID:             uuid.New().String(),
			SKU:            in.SKU,
			Name:           in.Name,
			Description:    in.Description,
			Category:       in.Category,
			Brand:          in.Brand,
			UnitPrice:      in.UnitPrice,
			VolumePerUnit:  in.VolumePerUnit,
			Quantity:       in.Quantity,
			ReorderLevel:   in.ReorderLevel,
			WarehouseID:    in.WarehouseID,
			ExpirationDate: in.ExpirationDate,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := itemRepo.Create(ctx, created); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		wh.AdjustCapacity(created.TotalVolume())
		wh.UpdatedAt = now
		if err := warehouseRepo.Update(ctx, wh); err != nil {
			return fmt.Errorf("update warehouse: %w", err)
		}
		act := uc.newActivity(created, entity.ActivityTypeReceive, 0, created.Quantity, performer, in.Notes, now)
		if err := activityRepo.Create(ctx, act); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		item, activity = created, act
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, activity)
	uc.log.Info().Str("item_id", item.ID).Str("sku", item.SKU).Str("warehouse_id", item.WarehouseID).
		Int("quantity", item.Quantity).Str("performer", performer.Username).Msg("registro de inventario creado")
	out := dto.FromInventoryItem(item)
	return &out, nil
}

// GetByID obtiene un registro; domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, notFound("inventory item not found")
	}
	out := dto.FromInventoryItem(item)
	return &out, nil
}

// List lista registros por bodega, SKU, categoría o stock bajo.
func (uc *ItemUseCase) List(ctx context.Context, params ItemListParams) (*dto.InventoryItemListResponse, error) {
	params.DefaultPage()
	list, err := uc.items.List(ctx, repository.ItemFilter{
		WarehouseID:  params.WarehouseID,
		SKU:          params.SKU,
		Category:     params.Category,
		LowStockOnly: params.LowStockOnly,
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.FromInventoryItem(it))
	}
	return &dto.InventoryItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: params.Limit, Offset: params.Offset},
	}, nil
}

// Update aplica el patch; la bodega del registro absorbe la diferencia de volumen total
// y se registra una actividad UPDATE con las notas del llamador.
func (uc *ItemUseCase) Update(ctx context.Context, performerID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	ctx, span := uc.startSpan(ctx, "inventory.UpdateItem", attribute.String("inventory.item_id", id))
	res, err := uc.update(ctx, performerID, id, in)
	endSpan(span, err)
	return res, err
}

func (uc *ItemUseCase) update(ctx context.Context, performerID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, fmt.Errorf("%w: sku must not be empty", domain.ErrInvalidInput)
		}
		in.SKU = &sku
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: reorder level must not be negative", domain.ErrInvalidInput)
	}
	if in.VolumePerUnit != nil && !in.VolumePerUnit.IsPositive() {
		return nil, fmt.Errorf("%w: volume per unit must be positive", domain.ErrInvalidInput)
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", domain.ErrInvalidInput)
	}
	performer, err := uc.resolvePerformer(ctx, performerID)
	if err != nil {
		return nil, err
	}

	var (
		item     *entity.InventoryItem
		activity *entity.StockActivity
	)
	err = uc.runTx(ctx, func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.StockActivityRepository,
	) error {
		item, activity = nil, nil

		current, err := itemRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if current == nil {
			return notFound("inventory item not found")
		}
		if in.SKU != nil && *in.SKU != current.SKU {
			lookup, err := itemRepo.FindBySKUAndWarehouse(ctx, *in.SKU, current.WarehouseID)
			if err != nil {
				return fmt.Errorf("find item: %w", err)
			}
			if other, ok := lookup.Item(); ok && other.ID != current.ID {
				return fmt.Errorf("%w: item with sku %s already exists in warehouse", domain.ErrDuplicate, *in.SKU)
			}
		}

		previousQty, previousVpu := current.Quantity, current.VolumePerUnit
		applyItemPatch(current, in)
		now := uc.now()
		current.UpdatedAt = now
		if err := itemRepo.Update(ctx, current); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if delta := stock.VolumeDelta(previousQty, previousVpu, current.Quantity, current.VolumePerUnit); !delta.IsZero() {
			wh, err := warehouseRepo.GetByID(ctx, current.WarehouseID)
			if err != nil {
				return fmt.Errorf("get warehouse: %w", err)
			}
			if wh == nil {
				return notFound("warehouse not found")
			}
			wh.AdjustCapacity(delta)
			wh.UpdatedAt = now
			if err := warehouseRepo.Update(ctx, wh); err != nil {
				return fmt.Errorf("update warehouse: %w", err)
			}
		}

		act := uc.newActivity(current, entity.ActivityTypeUpdate, previousQty, current.Quantity, performer, in.Notes, now)
		if err := activityRepo.Create(ctx, act); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		item, activity = current, act
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, activity)
	uc.log.Info().Str("item_id", item.ID).Str("sku", item.SKU).Int("previous", activity.PreviousQuantity).
		Int("new", activity.NewQuantity).Str("performer", performer.Username).Msg("registro de inventario actualizado")
	out := dto.FromInventoryItem(item)
	return &out, nil
}

func applyItemPatch(item *entity.InventoryItem, in dto.UpdateInventoryItemRequest) {
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Brand != nil {
		item.Brand = *in.Brand
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.VolumePerUnit != nil {
		item.VolumePerUnit = *in.VolumePerUnit
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.ExpirationDate != nil {
		exp := *in.ExpirationDate
		item.ExpirationDate = &exp
	}
}

// Delete elimina el registro: la bodega libera todo su volumen restante y queda
// una actividad DELETE (qty → 0) que conserva el id como referencia.
func (uc *ItemUseCase) Delete(ctx context.Context, performerID, id string) error {
	ctx, span := uc.startSpan(ctx, "inventory.DeleteItem", attribute.String("inventory.item_id", id))
	err := uc.delete(ctx, performerID, id)
	endSpan(span, err)
	return err
}

func (uc *ItemUseCase) delete(ctx context.Context, performerID, id string) error {
	performer, err := uc.resolvePerformer(ctx, performerID)
	if err != nil {
		return err
	}
	var activity *entity.StockActivity
	err = uc.runTx(ctx, func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.StockActivityRepository,
	) error {
		activity = nil

		current, err := itemRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if current == nil {
			return notFound("inventory item not found")
		}
		wh, err := warehouseRepo.GetByID(ctx, current.WarehouseID)
		if err != nil {
			return fmt.Errorf("get warehouse: %w", err)
		}
		if wh == nil {
			return notFound("warehouse not found")
		}

		now := uc.now()
		wh.AdjustCapacity(current.TotalVolume().Neg())
		wh.UpdatedAt = now
		if err := warehouseRepo.Update(ctx, wh); err != nil {
			return fmt.Errorf("update warehouse: %w", err)
		}
		if err := itemRepo.Delete(ctx, current.ID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		act := uc.newActivity(current, entity.ActivityTypeDelete, current.Quantity, 0, performer, nil, now)
		if err := activityRepo.Create(ctx, act); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		activity = act
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, activity)
	uc.log.Info().Str("item_id", id).Str("sku", activity.SKU).Int("released", activity.PreviousQuantity).
		Str("performer", performer.Username).Msg("registro de inventario eliminado")
	return nil
}
