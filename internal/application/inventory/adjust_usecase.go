package inventory

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	stock "github.com/kurbonovm/mktekhub-sub000/internal/domain/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// AdjustmentUseCase cambios de cantidad en sitio (ajuste manual y recepción).
// Cantidad, capacidad de la bodega y auditoría se confirman en una sola transacción.
type AdjustmentUseCase struct {
	engine
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(d Deps) *AdjustmentUseCase {
	return &AdjustmentUseCase{engine: newEngine(d)}
}

// AdjustQuantity suma in.QuantityChange (con signo) al registro itemID.
// Si la cantidad resultante fuera negativa falla con domain.ErrInsufficientStock sin tocar nada.
func (uc *AdjustmentUseCase) AdjustQuantity(ctx context.Context, performerID, itemID string, in dto.AdjustQuantityRequest) (*dto.StockChangeResult, error) {
	ctx, span := uc.startSpan(ctx, "inventory.AdjustQuantity",
		attribute.String("inventory.item_id", itemID),
		attribute.Int("inventory.quantity_change", in.QuantityChange),
	)
	res, err := uc.adjust(ctx, performerID, itemID, in)
	endSpan(span, err)
	return res, err
}

func (uc *AdjustmentUseCase) adjust(ctx context.Context, performerID, itemID string, in dto.AdjustQuantityRequest) (*dto.StockChangeResult, error) {
	if in.QuantityChange == 0 {
		return nil, fmt.Errorf("%w: quantity change must not be zero", domain.ErrInvalidInput)
	}
	performer, err := uc.resolvePerformer(ctx, performerID)
	if err != nil {
		return nil, err
	}
	notes := in.Notes
	if notes == nil {
		auto := stock.AdjustmentNote(in.QuantityChange)
		notes = &auto
	}
	return uc.applyChange(ctx, performer, itemID, in.QuantityChange, entity.ActivityTypeAdjustment, notes)
}

// ReceiveStock registra una entrada de in.Quantity unidades (> 0) como actividad RECEIVE.
func (uc *AdjustmentUseCase) ReceiveStock(ctx context.Context, performerID, itemID string, in dto.ReceiveStockRequest) (*dto.StockChangeResult, error) {
	ctx, span := uc.startSpan(ctx, "inventory.ReceiveStock",
		attribute.String("inventory.item_id", itemID),
		attribute.Int("inventory.quantity", in.Quantity),
	)
	res, err := uc.receive(ctx, performerID, itemID, in)
	endSpan(span, err)
	return res, err
}

func (uc *AdjustmentUseCase) receive(ctx context.Context, performerID, itemID string, in dto.ReceiveStockRequest) (*dto.StockChangeResult, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	performer, err := uc.resolvePerformer(ctx, performerID)
	if err != nil {
		return nil, err
	}
	return uc.applyChange(ctx, performer, itemID, in.Quantity, entity.ActivityTypeReceive, in.Notes)
}

// applyChange bloquea registro y bodega, aplica delta y deja una actividad de tipo activityType.
func (uc *AdjustmentUseCase) applyChange(ctx context.Context, performer *entity.User, itemID string, delta int, activityType string, notes *string) (*dto.StockChangeResult, error) {
	var (
		item     *entity.InventoryItem
		activity *entity.StockActivity
	)
	err := uc.runTx(ctx, func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.StockActivityRepository,
	) error {
		item, activity = nil, nil

		current, err := itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if current == nil {
			return notFound("inventory item not found")
		}
		previous := current.Quantity
		next := previous + delta
		if next < 0 {
			return fmt.Errorf("%w: available %d, requested %d", domain.ErrInsufficientStock, previous, -delta)
		}

		wh, err := warehouseRepo.GetByID(ctx, current.WarehouseID)
		if err != nil {
			return fmt.Errorf("get warehouse: %w", err)
		}
		if wh == nil {
			return notFound("warehouse not found")
		}

		now := uc.now()
		current.Quantity = next
		current.UpdatedAt = now
		if err := itemRepo.Update(ctx, current); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		wh.AdjustCapacity(stock.VolumeFor(delta, current.VolumePerUnit))
		wh.UpdatedAt = now
		if err := warehouseRepo.Update(ctx, wh); err != nil {
			return fmt.Errorf("update warehouse: %w", err)
		}

		act := uc.newActivity(current, activityType, previous, next, performer, notes, now)
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
	uc.log.Info().
		Str("item_id", item.ID).
		Str("sku", item.SKU).
		Str("type", activityType).
		Int("previous", activity.PreviousQuantity).
		Int("new", activity.NewQuantity).
		Msg("stock actualizado")

	return &dto.StockChangeResult{
		Item:     dto.FromInventoryItem(item),
		Activity: dto.FromStockActivity(activity),
	}, nil
}
