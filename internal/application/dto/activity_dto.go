package dto

import "time"

// StockActivityResponse salida de una actividad de auditoría.
type StockActivityResponse struct {
	ID                     string    `json:"id"`
	ItemID                 string    `json:"item_id"`
	SKU                    string    `json:"sku"`
	WarehouseID            string    `json:"warehouse_id"`
	Type                   string    `json:"activity_type"`
	QuantityChange         int       `json:"quantity_change"`
	PreviousQuantity       int       `json:"previous_quantity"`
	NewQuantity            int       `json:"new_quantity"`
	PerformedBy            string    `json:"performed_by"`
	PerformedByUsername    string    `json:"performed_by_username"`
	Timestamp              time.Time `json:"timestamp"`
	Notes                  *string   `json:"notes,omitempty"`
	SourceWarehouseID      *string   `json:"source_warehouse_id,omitempty"`
	DestinationWarehouseID *string   `json:"destination_warehouse_id,omitempty"`
}

// StockActivityListResponse lista paginada del historial.
type StockActivityListResponse struct {
	Items []StockActivityResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
