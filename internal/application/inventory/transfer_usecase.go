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

// TransferUseCase mueve cantidad de un SKU entre dos bodegas como una unidad lógica.
type TransferUseCase struct {
	engine
}

var _ StockTransferer = (*TransferUseCase)(nil)

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(d Deps) *TransferUseCase {
	return &TransferUseCase{engine: newEngine(d)}
}

// transferState resultado de una transferencia confirmada.
type transferState struct {
	source      *entity.InventoryItem
	destination *entity.InventoryItem
	created     bool
	activity    *entity.StockActivity
}

// TransferStock valida todo antes de mutar: bodegas distintas, existentes y activas;
// registro origen presente y con stock suficiente. Luego, en la misma transacción,
// descuenta el origen, acredita (o crea) el destino, mueve la capacidad y deja una
// sola actividad TRANSFER con las cantidades del origen.
func (uc *TransferUseCase) TransferStock(ctx context.Context, performerID string, in dto.TransferRequest) (*dto.TransferResult, error) {
	ctx, span := uc.startSpan(ctx, "inventory.TransferStock",
		attribute.String("inventory.sku", in.SKU),
		attribute.String("inventory.source_warehouse_id", in.SourceWarehouseID),
		attribute.String("inventory.destination_warehouse_id", in.DestinationWarehouseID),
		attribute.Int("inventory.quantity", in.Quantity),
	)
	res, err := uc.transfer(ctx, performerID, in)
	if res != nil {
		span.SetAttributes(attribute.Bool("inventory.destination_created", res.DestinationCreated))
	}
	endSpan(span, err)
	return res, err
}

func (uc *TransferUseCase) transfer(ctx context.Context, performerID string, in dto.TransferRequest) (*dto.TransferResult, error) {
	if in.SourceWarehouseID == in.DestinationWarehouseID {
		return nil, fmt.Errorf("%w: source and destination must differ", domain.ErrInvalidOperation)
	}
	in.SKU = strings.TrimSpace(in.SKU)
	switch {
	case in.SKU == "":
		return nil, fmt.Errorf("%w: sku is required", domain.ErrInvalidInput)
	case in.Quantity <= 0:
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	performer, err := uc.resolvePerformer(ctx, performerID)
	if err != nil {
		return nil, err
	}

	var st transferState
	err = uc.runTx(ctx, func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.StockActivityRepository,
	) error {
		st = transferState{}

		srcWh, err := loadActiveWarehouse(ctx, warehouseRepo, in.SourceWarehouseID, "source")
		if err != nil {
			return err
		}
		dstWh, err := loadActiveWarehouse(ctx, warehouseRepo, in.DestinationWarehouseID, "destination")
		if err != nil {
			return err
		}

		srcLookup, err := itemRepo.FindBySKUAndWarehouse(ctx, in.SKU, srcWh.ID)
		if err != nil {
			return fmt.Errorf("find source item: %w", err)
		}
		source, ok := srcLookup.Item()
		if !ok {
			return notFound("item not found in source warehouse")
		}
		if source.Quantity < in.Quantity {
			return fmt.Errorf("%w: available %d, requested %d", domain.ErrInsufficientStock, source.Quantity, in.Quantity)
		}

		dstLookup, err := itemRepo.FindBySKUAndWarehouse(ctx, in.SKU, dstWh.ID)
		if err != nil {
			return fmt.Errorf("find destination item: %w", err)
		}
		destination, found := dstLookup.Item()
		// Ambas bodegas se ajustan por el mismo volumen; con otro volumen por unidad
		// la capacidad del destino dejaría de cuadrar con sus registros.
		if found && !destination.VolumePerUnit.Equal(source.VolumePerUnit) {
			return fmt.Errorf("%w: volume per unit differs between source (%s) and destination (%s)",
				domain.ErrInvalidOperation, source.VolumePerUnit, destination.VolumePerUnit)
		}

		// A partir de aquí solo se muta.
		now := uc.now()
		previous := source.Quantity
		source.Quantity -= in.Quantity
		source.UpdatedAt = now

		if !found {
			destination = source.CloneForWarehouse(uuid.New().String(), dstWh.ID, now)
		}
		destination.Quantity += in.Quantity
		destination.UpdatedAt = now

		if err := itemRepo.Update(ctx, source); err != nil {
			return fmt.Errorf("update source item: %w", err)
		}
		if found {
			if err := itemRepo.Update(ctx, destination); err != nil {
				return fmt.Errorf("update destination item: %w", err)
			}
		} else if err := itemRepo.Create(ctx, destination); err != nil {
			return fmt.Errorf("create destination item: %w", err)
		}

		volume := stock.VolumeFor(in.Quantity, source.VolumePerUnit)
		srcWh.AdjustCapacity(volume.Neg())
		srcWh.UpdatedAt = now
		dstWh.AdjustCapacity(volume)
		dstWh.UpdatedAt = now
		if err := warehouseRepo.Update(ctx, srcWh); err != nil {
			return fmt.Errorf("update source warehouse: %w", err)
		}
		if err := warehouseRepo.Update(ctx, dstWh); err != nil {
			return fmt.Errorf("update destination warehouse: %w", err)
		}

		act := uc.newActivity(source, entity.ActivityTypeTransfer, previous, source.Quantity, performer, in.Notes, now)
		act.QuantityChange = in.Quantity
		act.SourceWarehouseID = &srcWh.ID
		act.DestinationWarehouseID = &dstWh.ID
		if err := activityRepo.Create(ctx, act); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		st = transferState{source: source, destination: destination, created: !found, activity: act}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, st.activity)
	uc.log.Info().
		Str("sku", in.SKU).
		Str("source_warehouse_id", in.SourceWarehouseID).
		Str("destination_warehouse_id", in.DestinationWarehouseID).
		Int("quantity", in.Quantity).
		Bool("destination_created", st.created).
		Str("performer", performer.Username).
		Msg("traslado de stock")

	return &dto.TransferResult{
		SourceItem:         dto.FromInventoryItem(st.source),
		DestinationItem:    dto.FromInventoryItem(st.destination),
		DestinationCreated: st.created,
		Activity:           dto.FromStockActivity(st.activity),
	}, nil
}

// loadActiveWarehouse carga una bodega que debe existir y estar activa; role nombra el extremo.
func loadActiveWarehouse(ctx context.Context, repo repository.WarehouseRepository, id, role string) (*entity.Warehouse, error) {
	wh, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s warehouse: %w", role, err)
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: %s warehouse not found", domain.ErrNotFound, role)
	}
	if !wh.IsActive {
		return nil, fmt.Errorf("%w: warehouse not active", domain.ErrInvalidOperation)
	}
	return wh, nil
}
