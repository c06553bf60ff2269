package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// runTx ejecuta fn en una transacción; si otra transacción modificó las mismas filas
// (domain.ErrConflict) se reintenta completa con backoff exponencial, revalidando todo.
// Cualquier otro error se devuelve sin reintentar.
func (e *engine) runTx(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	warehouseRepo repository.WarehouseRepository,
	activityRepo repository.StockActivityRepository,
) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := e.txRunner.Run(ctx, fn)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrConflict) {
			e.log.Warn().Err(err).Int("attempt", attempt).Msg("conflicto de versión, reintentando")
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, e.maxRetries), ctx))
}
