package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/inventory"
)

func TestVolumeFor(t *testing.T) {
	assert.True(t, decimal.RequireFromString("37.5").Equal(inventory.VolumeFor(15, decimal.RequireFromString("2.5"))))
	assert.True(t, decimal.RequireFromString("-5").Equal(inventory.VolumeFor(-2, decimal.RequireFromString("2.5"))))
	assert.True(t, decimal.Zero.Equal(inventory.VolumeFor(0, decimal.RequireFromString("2.5"))))
}

func TestVolumeDelta_CantidadYVolumen(t *testing.T) {
	// 10 × 2 = 20  →  12 × 3 = 36
	delta := inventory.VolumeDelta(10, decimal.NewFromInt(2), 12, decimal.NewFromInt(3))
	assert.True(t, decimal.NewFromInt(16).Equal(delta), "delta = %s", delta)
}

func TestAdjustmentNote_SignoUnico(t *testing.T) {
	assert.Equal(t, "Quantity adjusted by +10", inventory.AdjustmentNote(10))
	assert.Equal(t, "Quantity adjusted by -20", inventory.AdjustmentNote(-20))
	assert.NotContains(t, inventory.AdjustmentNote(-20), "+-")
	assert.NotContains(t, inventory.AdjustmentNote(-20), "--")
}
