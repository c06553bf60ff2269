package inventory

import (
	"context"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de inventario: si fn devuelve error nada queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		warehouseRepo repository.WarehouseRepository,
		activityRepo repository.StockActivityRepository,
	) error) error
}

// ActivityPublisher difunde las actividades ya confirmadas (best-effort, fuera de la tx).
type ActivityPublisher interface {
	Publish(ctx context.Context, activity *entity.StockActivity) error
}

// StockTransferer ejecuta un traslado individual. Lo implementa *TransferUseCase;
// BulkTransferUseCase depende solo de este contrato.
type StockTransferer interface {
	TransferStock(ctx context.Context, performerID string, in dto.TransferRequest) (*dto.TransferResult, error)
}
