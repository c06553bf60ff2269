package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

func TestAdjustQuantity_SumaYNotaConSigno(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 100, "2")

	res, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: 10})
	require.NoError(t, err)

	assert.Equal(t, 110, res.Item.Quantity)
	assert.Equal(t, entity.ActivityTypeAdjustment, res.Activity.Type)
	assert.Equal(t, 10, res.Activity.QuantityChange)
	assert.Equal(t, 100, res.Activity.PreviousQuantity)
	assert.Equal(t, 110, res.Activity.NewQuantity)
	require.NotNil(t, res.Activity.Notes)
	assert.Equal(t, "Quantity adjusted by +10", *res.Activity.Notes)
	requireDecimal(t, "220", f.capacity(t, "wh-1"))
}

func TestAdjustQuantity_NegativoUnSoloSigno(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 100, "2")

	res, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: -20})
	require.NoError(t, err)

	assert.Equal(t, 80, res.Item.Quantity)
	assert.Equal(t, -20, res.Activity.QuantityChange)
	assert.Equal(t, "Quantity adjusted by -20", *res.Activity.Notes)
	assert.NotContains(t, *res.Activity.Notes, "+-")
	assert.NotContains(t, *res.Activity.Notes, "--")
	requireDecimal(t, "160", f.capacity(t, "wh-1"))
}

func TestAdjustQuantity_NotasExplicitas(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 100, "1")

	res, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{
		QuantityChange: -3,
		Notes:          strPtr("conteo físico"),
	})
	require.NoError(t, err)
	assert.Equal(t, "conteo físico", *res.Activity.Notes)
}

func TestAdjustQuantity_StockInsuficienteNoMuta(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 100, "1")

	_, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: -150})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, _ := f.item(t, "SKU-A", "wh-1")
	assert.Equal(t, 100, got.Quantity)
	requireDecimal(t, "100", f.capacity(t, "wh-1"))
	assert.Empty(t, f.activitiesOf(t, entity.ActivityTypeAdjustment))
}

func TestAdjustQuantity_HastaCero(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 5, "4")

	res, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: -5})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Item.Quantity)
	requireDecimal(t, "0", f.capacity(t, "wh-1"))
}

func TestAdjustQuantity_Errores(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 5, "1")

	_, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.adjust.AdjustQuantity(context.Background(), testPerformerID, "no-existe", dto.AdjustQuantityRequest{QuantityChange: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.adjust.AdjustQuantity(context.Background(), "nadie", item.ID, dto.AdjustQuantityRequest{QuantityChange: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiveStock_NotasAusentesSeConservan(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 5, "2")

	res, err := f.adjust.ReceiveStock(context.Background(), testPerformerID, item.ID, dto.ReceiveStockRequest{Quantity: 15})
	require.NoError(t, err)

	assert.Equal(t, 20, res.Item.Quantity)
	assert.Equal(t, entity.ActivityTypeReceive, res.Activity.Type)
	assert.Equal(t, 5, res.Activity.PreviousQuantity)
	assert.Equal(t, 20, res.Activity.NewQuantity)
	assert.Nil(t, res.Activity.Notes, "RECEIVE no genera nota automática")
	requireDecimal(t, "40", f.capacity(t, "wh-1"))

	res, err = f.adjust.ReceiveStock(context.Background(), testPerformerID, item.ID, dto.ReceiveStockRequest{Quantity: 1, Notes: strPtr("OC-778")})
	require.NoError(t, err)
	assert.Equal(t, "OC-778", *res.Activity.Notes)

	_, err = f.adjust.ReceiveStock(context.Background(), testPerformerID, item.ID, dto.ReceiveStockRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustQuantity_Concurrente(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 0, "1")

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.adjust.AdjustQuantity(context.Background(), testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, _ := f.item(t, "SKU-A", "wh-1")
	assert.Equal(t, workers, got.Quantity)
	requireDecimal(t, "20", f.capacity(t, "wh-1"))
	assert.Len(t, f.activitiesOf(t, entity.ActivityTypeAdjustment), workers)
}
