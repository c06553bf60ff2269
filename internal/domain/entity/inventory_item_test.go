package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

func TestInventoryItem_TotalVolume(t *testing.T) {
	item := &entity.InventoryItem{Quantity: 100, VolumePerUnit: decimal.RequireFromString("1.5")}
	assert.True(t, decimal.NewFromInt(150).Equal(item.TotalVolume()))
}

func TestInventoryItem_IsLowStock(t *testing.T) {
	item := &entity.InventoryItem{Quantity: 5, ReorderLevel: 5}
	assert.True(t, item.IsLowStock())
	item.Quantity = 6
	assert.False(t, item.IsLowStock())
}

func TestInventoryItem_CloneForWarehouse(t *testing.T) {
	exp := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &entity.InventoryItem{
		ID: "item-1", SKU: "SKU-A", Name: "Caja", Category: "Empaque", Brand: "ACME",
		UnitPrice: decimal.NewFromInt(12), VolumePerUnit: decimal.NewFromInt(2),
		Quantity: 70, ReorderLevel: 10, WarehouseID: "wh-1", ExpirationDate: &exp, Version: 4,
	}
	now := time.Now()

	clone := src.CloneForWarehouse("item-2", "wh-2", now)

	assert.Equal(t, "item-2", clone.ID)
	assert.Equal(t, "wh-2", clone.WarehouseID)
	assert.Equal(t, "SKU-A", clone.SKU)
	assert.Equal(t, "Caja", clone.Name)
	assert.Equal(t, 0, clone.Quantity)
	assert.Equal(t, int64(0), clone.Version)
	assert.True(t, src.VolumePerUnit.Equal(clone.VolumePerUnit))
	if assert.NotNil(t, clone.ExpirationDate) {
		assert.NotSame(t, src.ExpirationDate, clone.ExpirationDate)
		assert.True(t, exp.Equal(*clone.ExpirationDate))
	}
}
