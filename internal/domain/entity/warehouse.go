package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCapacityAlertThreshold porcentaje de utilización a partir del cual se alerta.
const DefaultCapacityAlertThreshold = 80

var hundred = decimal.NewFromInt(100)

// Warehouse representa una bodega con capacidad volumétrica.
// CurrentCapacity se mantiene de forma incremental con cada movimiento de stock;
// es un valor de alerta, no un tope duro.
type Warehouse struct {
	ID                     string
	Name                   string
	Location               string
	MaxCapacity            decimal.Decimal
	CurrentCapacity        decimal.Decimal
	CapacityAlertThreshold decimal.Decimal
	IsActive               bool
	Version                int64 // control optimista de concurrencia
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// AdjustCapacity suma (o resta, si delta es negativo) volumen a la capacidad actual.
func (w *Warehouse) AdjustCapacity(delta decimal.Decimal) {
	w.CurrentCapacity = w.CurrentCapacity.Add(delta)
}

// UtilizationPercentage = CurrentCapacity / MaxCapacity * 100. Derivado, nunca persistido.
func (w *Warehouse) UtilizationPercentage() decimal.Decimal {
	if !w.MaxCapacity.IsPositive() {
		return decimal.Zero
	}
	return w.CurrentCapacity.Div(w.MaxCapacity).Mul(hundred)
}

// IsCapacityAlert indica si la utilización alcanzó el umbral de alerta.
func (w *Warehouse) IsCapacityAlert() bool {
	return w.UtilizationPercentage().GreaterThanOrEqual(w.CapacityAlertThreshold)
}

// HasInventory indica si la bodega todavía ocupa volumen; bloquea su eliminación.
func (w *Warehouse) HasInventory() bool {
	return w.CurrentCapacity.IsPositive()
}

// AvailableCapacity volumen libre antes de llegar a MaxCapacity (puede ser negativo).
func (w *Warehouse) AvailableCapacity() decimal.Decimal {
	return w.MaxCapacity.Sub(w.CurrentCapacity)
}
