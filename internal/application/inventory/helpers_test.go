package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
	"github.com/kurbonovm/mktekhub-sub000/internal/infrastructure/memory"
)

const testPerformerID = "user-1"

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fixture motor completo sobre el store en memoria.
type fixture struct {
	store      *memory.Store
	deps       inventory.Deps
	items      *inventory.ItemUseCase
	adjust     *inventory.AdjustmentUseCase
	transfer   *inventory.TransferUseCase
	bulk       *inventory.BulkTransferUseCase
	itemRepo   *memory.ItemRepo
	whRepo     *memory.WarehouseRepo
	activities *memory.ActivityRepo
}

type fixtureOption func(*inventory.Deps)

func withPublisher(p inventory.ActivityPublisher) fixtureOption {
	return func(d *inventory.Deps) { d.Publisher = p }
}

func withTxRunner(wrap func(inventory.TxRunner) inventory.TxRunner) fixtureOption {
	return func(d *inventory.Deps) { d.TxRunner = wrap(d.TxRunner) }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID:       testPerformerID,
		Username: "operador",
		Email:    "operador@example.com",
		Role:     entity.RoleStaff,
		Active:   true,
	}))

	deps := inventory.Deps{
		TxRunner: memory.NewTxRunner(store),
		Items:    memory.NewInventoryItemRepository(store),
		Users:    users,
		Logger:   zerolog.Nop(),
		Clock:    func() time.Time { return testNow },
	}
	for _, opt := range opts {
		opt(&deps)
	}
	transfer := inventory.NewTransferUseCase(deps)
	return &fixture{
		store:      store,
		deps:       deps,
		items:      inventory.NewItemUseCase(deps),
		adjust:     inventory.NewAdjustmentUseCase(deps),
		transfer:   transfer,
		bulk:       inventory.NewBulkTransferUseCase(transfer, zerolog.Nop(), nil),
		itemRepo:   memory.NewInventoryItemRepository(store),
		whRepo:     memory.NewWarehouseRepository(store),
		activities: memory.NewStockActivityRepository(store),
	}
}

func (f *fixture) addWarehouse(t *testing.T, id string, maxCapacity int64, active bool) {
	t.Helper()
	require.NoError(t, f.whRepo.Create(context.Background(), &entity.Warehouse{
		ID:                     id,
		Name:                   "Bodega " + id,
		MaxCapacity:            decimal.NewFromInt(maxCapacity),
		CapacityAlertThreshold: decimal.NewFromInt(entity.DefaultCapacityAlertThreshold),
		IsActive:               active,
	}))
}

// addItem crea el registro por el caso de uso para que la capacidad quede consistente.
func (f *fixture) addItem(t *testing.T, sku, warehouseID string, qty int, volumePerUnit string) *dto.InventoryItemResponse {
	t.Helper()
	out, err := f.items.Create(context.Background(), testPerformerID, dto.CreateInventoryItemRequest{
		SKU:           sku,
		Name:          "Producto " + sku,
		Category:      "general",
		Brand:         "Acme",
		UnitPrice:     decimal.NewFromInt(5),
		VolumePerUnit: decimal.RequireFromString(volumePerUnit),
		Quantity:      qty,
		ReorderLevel:  10,
		WarehouseID:   warehouseID,
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) item(t *testing.T, sku, warehouseID string) (*entity.InventoryItem, bool) {
	t.Helper()
	lookup, err := f.itemRepo.FindBySKUAndWarehouse(context.Background(), sku, warehouseID)
	require.NoError(t, err)
	return lookup.Item()
}

func (f *fixture) capacity(t *testing.T, warehouseID string) decimal.Decimal {
	t.Helper()
	wh, err := f.whRepo.GetByID(context.Background(), warehouseID)
	require.NoError(t, err)
	require.NotNil(t, wh)
	return wh.CurrentCapacity
}

func (f *fixture) activitiesOf(t *testing.T, activityType string) []*entity.StockActivity {
	t.Helper()
	list, err := f.activities.List(context.Background(), repository.ActivityFilter{Type: activityType})
	require.NoError(t, err)
	return list
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

func strPtr(s string) *string { return &s }
