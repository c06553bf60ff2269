package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VolumeFor devuelve el volumen que ocupan qty unidades (qty puede ser negativo: volumen liberado).
func VolumeFor(qty int, volumePerUnit decimal.Decimal) decimal.Decimal {
	return volumePerUnit.Mul(decimal.NewFromInt(int64(qty)))
}

// VolumeDelta diferencia de volumen total entre dos estados de un registro.
// Cubre cambios simultáneos de cantidad y de volumen por unidad.
func VolumeDelta(oldQty int, oldVolumePerUnit decimal.Decimal, newQty int, newVolumePerUnit decimal.Decimal) decimal.Decimal {
	return VolumeFor(newQty, newVolumePerUnit).Sub(VolumeFor(oldQty, oldVolumePerUnit))
}

// AdjustmentNote nota automática de un ajuste manual; el signo aparece una sola vez ("+10", "-20").
func AdjustmentNote(delta int) string {
	return fmt.Sprintf("Quantity adjusted by %+d", delta)
}
