package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

func TestBulkTransfer_FilaFallidaNoAfectaLasDemas(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addWarehouse(t, "wh-2", 1000, true)
	f.addItem(t, "SKU-A", "wh-1", 100, "1")

	res := f.bulk.BulkTransferStock(context.Background(), testPerformerID, dto.BulkTransferRequest{
		Transfers: []dto.TransferRequest{
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 10},
			{SKU: "SKU-DESCONOCIDO", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 10},
		},
	})

	assert.Equal(t, 2, res.TotalTransfers)
	assert.Equal(t, 1, res.SuccessfulTransfers)
	assert.Equal(t, 1, res.FailedTransfers)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Index)
	assert.Equal(t, "SKU-DESCONOCIDO", res.Errors[0].SKU)
	assert.Equal(t, domain.KindNotFound, res.Errors[0].Code)
	assert.Contains(t, res.Errors[0].Message, "not found")

	dst, ok := f.item(t, "SKU-A", "wh-2")
	require.True(t, ok)
	assert.Equal(t, 10, dst.Quantity)
}

func TestBulkTransfer_AislamientoNMenosK(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addWarehouse(t, "wh-2", 1000, true)
	f.addWarehouse(t, "wh-off", 1000, false)
	f.addItem(t, "SKU-A", "wh-1", 20, "2")

	res := f.bulk.BulkTransferStock(context.Background(), testPerformerID, dto.BulkTransferRequest{
		Transfers: []dto.TransferRequest{
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 5},   // ok, crea destino
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-1", Quantity: 5},   // misma bodega
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 5},   // ok, acredita
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-off", Quantity: 1}, // inactiva
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 50},  // insuficiente
			{SKU: "SKU-A", SourceWarehouseID: "wh-2", DestinationWarehouseID: "wh-1", Quantity: 2},   // ok, regreso
		},
	})

	assert.Equal(t, 6, res.TotalTransfers)
	assert.Equal(t, 3, res.SuccessfulTransfers)
	assert.Equal(t, 3, res.FailedTransfers)
	assert.Equal(t, res.TotalTransfers, res.SuccessfulTransfers+res.FailedTransfers)

	require.Len(t, res.Errors, 3)
	assert.Equal(t, 1, res.Errors[0].Index)
	assert.Equal(t, domain.KindInvalidOperation, res.Errors[0].Code)
	assert.Equal(t, 3, res.Errors[1].Index)
	assert.Equal(t, domain.KindInvalidOperation, res.Errors[1].Code)
	assert.Equal(t, 4, res.Errors[2].Index)
	assert.Equal(t, domain.KindInsufficientStock, res.Errors[2].Code)

	src, _ := f.item(t, "SKU-A", "wh-1")
	dst, _ := f.item(t, "SKU-A", "wh-2")
	assert.Equal(t, 12, src.Quantity)
	assert.Equal(t, 8, dst.Quantity)
	requireDecimal(t, "24", f.capacity(t, "wh-1"))
	requireDecimal(t, "16", f.capacity(t, "wh-2"))
	assert.Len(t, f.activitiesOf(t, entity.ActivityTypeTransfer), 3)
}

func TestBulkTransfer_LoteVacio(t *testing.T) {
	f := newFixture(t)

	res := f.bulk.BulkTransferStock(context.Background(), testPerformerID, dto.BulkTransferRequest{})
	assert.Equal(t, 0, res.TotalTransfers)
	assert.Equal(t, 0, res.SuccessfulTransfers)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)
}

func TestBulkTransfer_PerformerInvalidoFallaCadaFila(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addWarehouse(t, "wh-2", 1000, true)
	f.addItem(t, "SKU-A", "wh-1", 20, "1")

	res := f.bulk.BulkTransferStock(context.Background(), "nadie", dto.BulkTransferRequest{
		Transfers: []dto.TransferRequest{
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 1},
			{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 1},
		},
	})
	assert.Equal(t, 0, res.SuccessfulTransfers)
	assert.Equal(t, 2, res.FailedTransfers)
	for _, e := range res.Errors {
		assert.Contains(t, e.Message, "user not found")
	}
}
