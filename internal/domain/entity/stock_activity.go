package entity

import "time"

// Tipos de actividad de stock.
const (
	ActivityTypeReceive    = "RECEIVE"    // entrada
	ActivityTypeTransfer   = "TRANSFER"   // traslado entre bodegas
	ActivityTypeAdjustment = "ADJUSTMENT" // ajuste manual
	ActivityTypeUpdate     = "UPDATE"     // edición del registro
	ActivityTypeDelete     = "DELETE"     // eliminación del registro
)

// StockActivity registro inmutable de auditoría: uno por cada operación que cambia cantidades.
// Nunca se actualiza ni se elimina.
type StockActivity struct {
	ID                     string
	ItemID                 string
	SKU                    string // snapshot al momento del movimiento
	WarehouseID            string // bodega del registro; en TRANSFER, la de origen
	Type                   string
	QuantityChange         int
	PreviousQuantity       int
	NewQuantity            int
	PerformedBy            string // UserID
	PerformedByUsername    string
	Timestamp              time.Time
	Notes                  *string
	SourceWarehouseID      *string // solo TRANSFER
	DestinationWarehouseID *string // solo TRANSFER
}

// IsValidActivityType indica si t es uno de los tipos conocidos.
func IsValidActivityType(t string) bool {
	switch t {
	case ActivityTypeReceive, ActivityTypeTransfer, ActivityTypeAdjustment, ActivityTypeUpdate, ActivityTypeDelete:
		return true
	}
	return false
}
