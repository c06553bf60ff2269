package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

func newWarehouse(max, current string) *entity.Warehouse {
	return &entity.Warehouse{
		ID:                     "wh-1",
		Name:                   "Norte",
		MaxCapacity:            decimal.RequireFromString(max),
		CurrentCapacity:        decimal.RequireFromString(current),
		CapacityAlertThreshold: decimal.NewFromInt(entity.DefaultCapacityAlertThreshold),
		IsActive:               true,
	}
}

func TestWarehouse_UtilizationPercentage(t *testing.T) {
	w := newWarehouse("1000", "250")
	assert.True(t, decimal.NewFromInt(25).Equal(w.UtilizationPercentage()))
	assert.False(t, w.IsCapacityAlert())
}

func TestWarehouse_UtilizationSinCapacidadMaxima(t *testing.T) {
	w := newWarehouse("0", "10")
	assert.True(t, decimal.Zero.Equal(w.UtilizationPercentage()))
}

func TestWarehouse_AlertaEnElUmbral(t *testing.T) {
	w := newWarehouse("1000", "800")
	assert.True(t, w.IsCapacityAlert(), "80% con umbral 80 debe alertar")

	w.AdjustCapacity(decimal.NewFromInt(-1))
	assert.False(t, w.IsCapacityAlert())
}

func TestWarehouse_SobreCapacidadNoEsTope(t *testing.T) {
	w := newWarehouse("100", "90")
	w.AdjustCapacity(decimal.NewFromInt(50))
	assert.True(t, decimal.NewFromInt(140).Equal(w.CurrentCapacity))
	assert.True(t, w.AvailableCapacity().IsNegative())
	assert.True(t, w.IsCapacityAlert())
}

func TestWarehouse_HasInventory(t *testing.T) {
	assert.True(t, newWarehouse("100", "0.5").HasInventory())
	assert.False(t, newWarehouse("100", "0").HasInventory())
}
