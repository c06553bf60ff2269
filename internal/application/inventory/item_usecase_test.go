package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

func TestCreateItem_RegistraRecepcionInicial(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)

	out, err := f.items.Create(context.Background(), testPerformerID, dto.CreateInventoryItemRequest{
		SKU:           " SKU-A ",
		Name:          "Tornillo",
		VolumePerUnit: decimal.RequireFromString("0.5"),
		Quantity:      40,
		WarehouseID:   "wh-1",
		Notes:         strPtr("alta inicial"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SKU-A", out.SKU)
	requireDecimal(t, "20", out.TotalVolume)
	requireDecimal(t, "20", f.capacity(t, "wh-1"))

	receives := f.activitiesOf(t, entity.ActivityTypeReceive)
	require.Len(t, receives, 1)
	assert.Equal(t, 0, receives[0].PreviousQuantity)
	assert.Equal(t, 40, receives[0].NewQuantity)
	assert.Equal(t, 40, receives[0].QuantityChange)
	assert.Equal(t, "alta inicial", *receives[0].Notes)
	assert.Equal(t, "wh-1", receives[0].WarehouseID)
}

func TestCreateItem_Errores(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addWarehouse(t, "wh-off", 1000, false)
	f.addItem(t, "SKU-A", "wh-1", 1, "1")

	base := dto.CreateInventoryItemRequest{SKU: "SKU-B", Name: "B", VolumePerUnit: decimal.NewFromInt(1), WarehouseID: "wh-1"}

	dup := base
	dup.SKU = "SKU-A"
	_, err := f.items.Create(context.Background(), testPerformerID, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	inactive := base
	inactive.WarehouseID = "wh-off"
	_, err = f.items.Create(context.Background(), testPerformerID, inactive)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	missing := base
	missing.WarehouseID = "wh-404"
	_, err = f.items.Create(context.Background(), testPerformerID, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	zeroVolume := base
	zeroVolume.VolumePerUnit = decimal.Zero
	_, err = f.items.Create(context.Background(), testPerformerID, zeroVolume)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := base
	negative.Quantity = -1
	_, err = f.items.Create(context.Background(), testPerformerID, negative)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateItem_CapacidadPorDiferenciaDeVolumen(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 10, "2")
	requireDecimal(t, "20", f.capacity(t, "wh-1"))

	qty := 15
	vpu := decimal.NewFromInt(3)
	out, err := f.items.Update(context.Background(), testPerformerID, item.ID, dto.UpdateInventoryItemRequest{
		Quantity:      &qty,
		VolumePerUnit: &vpu,
		Name:          strPtr("Nuevo nombre"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo nombre", out.Name)
	requireDecimal(t, "45", f.capacity(t, "wh-1"))

	updates := f.activitiesOf(t, entity.ActivityTypeUpdate)
	require.Len(t, updates, 1)
	assert.Equal(t, 10, updates[0].PreviousQuantity)
	assert.Equal(t, 15, updates[0].NewQuantity)
	assert.Equal(t, 5, updates[0].QuantityChange)
	assert.Nil(t, updates[0].Notes)
}

func TestUpdateItem_SKUDuplicado(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addItem(t, "SKU-A", "wh-1", 1, "1")
	b := f.addItem(t, "SKU-B", "wh-1", 1, "1")

	_, err := f.items.Update(context.Background(), testPerformerID, b.ID, dto.UpdateInventoryItemRequest{SKU: strPtr("SKU-A")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, f.activitiesOf(t, entity.ActivityTypeUpdate))
}

func TestDeleteItem_LiberaVolumen(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 12, "2.5")
	requireDecimal(t, "30", f.capacity(t, "wh-1"))

	require.NoError(t, f.items.Delete(context.Background(), testPerformerID, item.ID))
	requireDecimal(t, "0", f.capacity(t, "wh-1"))

	_, found := f.item(t, "SKU-A", "wh-1")
	assert.False(t, found)

	deletes := f.activitiesOf(t, entity.ActivityTypeDelete)
	require.Len(t, deletes, 1)
	assert.Equal(t, item.ID, deletes[0].ItemID)
	assert.Equal(t, 12, deletes[0].PreviousQuantity)
	assert.Equal(t, 0, deletes[0].NewQuantity)
	assert.Equal(t, -12, deletes[0].QuantityChange)

	_, err := f.items.GetByID(context.Background(), item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.items.Delete(context.Background(), testPerformerID, item.ID), domain.ErrNotFound)
}

func TestListItems_Filtros(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addWarehouse(t, "wh-2", 1000, true)
	f.addItem(t, "SKU-A", "wh-1", 3, "1")
	f.addItem(t, "SKU-B", "wh-1", 50, "1")
	f.addItem(t, "SKU-A", "wh-2", 80, "1")

	byWarehouse, err := f.items.List(context.Background(), inventory.ItemListParams{WarehouseID: "wh-1"})
	require.NoError(t, err)
	assert.Len(t, byWarehouse.Items, 2)
	assert.Equal(t, 20, byWarehouse.Page.Limit)

	bySKU, err := f.items.List(context.Background(), inventory.ItemListParams{SKU: "SKU-A"})
	require.NoError(t, err)
	assert.Len(t, bySKU.Items, 2)

	low, err := f.items.List(context.Background(), inventory.ItemListParams{LowStockOnly: true})
	require.NoError(t, err)
	require.Len(t, low.Items, 1)
	assert.True(t, low.Items[0].LowStock)
	assert.Equal(t, "wh-1", low.Items[0].WarehouseID)
}

// Cada operación exitosa deja exactamente una actividad con el antes/después real.
func TestAuditoria_UnaActividadPorOperacion(t *testing.T) {
	f := newFixture(t)
	f.addWarehouse(t, "wh-1", 1000, true)
	f.addWarehouse(t, "wh-2", 1000, true)
	item := f.addItem(t, "SKU-A", "wh-1", 10, "1")
	ctx := context.Background()

	_, err := f.adjust.AdjustQuantity(ctx, testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: 5})
	require.NoError(t, err)
	_, err = f.adjust.ReceiveStock(ctx, testPerformerID, item.ID, dto.ReceiveStockRequest{Quantity: 5})
	require.NoError(t, err)
	_, err = f.transfer.TransferStock(ctx, testPerformerID, dto.TransferRequest{SKU: "SKU-A", SourceWarehouseID: "wh-1", DestinationWarehouseID: "wh-2", Quantity: 8})
	require.NoError(t, err)
	_, err = f.adjust.AdjustQuantity(ctx, testPerformerID, item.ID, dto.AdjustQuantityRequest{QuantityChange: -100})
	require.Error(t, err)

	all := f.activitiesOf(t, "")
	require.Len(t, all, 4, "alta + ajuste + recepción + traslado")
	// Del más reciente al más antiguo: cada previous coincide con el new anterior.
	for i := 0; i < len(all)-1; i++ {
		assert.Equal(t, all[i+1].NewQuantity, all[i].PreviousQuantity)
	}
	got, _ := f.item(t, "SKU-A", "wh-1")
	assert.Equal(t, all[0].NewQuantity, got.Quantity)
}
