package dto

// AdjustQuantityRequest body para POST /api/inventory/:id/adjust.
// QuantityChange con signo; Notes opcional reemplaza la nota automática.
type AdjustQuantityRequest struct {
	QuantityChange int     `json:"quantity_change"`
	Notes          *string `json:"notes,omitempty"`
}

// ReceiveStockRequest body para POST /api/inventory/:id/receive.
type ReceiveStockRequest struct {
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

// StockChangeResult estado del registro y actividad generada por un cambio en sitio.
type StockChangeResult struct {
	Item     InventoryItemResponse `json:"item"`
	Activity StockActivityResponse `json:"activity"`
}

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	SKU                    string  `json:"sku"`
	SourceWarehouseID      string  `json:"source_warehouse_id"`
	DestinationWarehouseID string  `json:"destination_warehouse_id"`
	Quantity               int     `json:"quantity"`
	Notes                  *string `json:"notes,omitempty"`
}

// TransferResult estado resultante de ambos registros y la actividad TRANSFER generada.
type TransferResult struct {
	SourceItem         InventoryItemResponse `json:"source_item"`
	DestinationItem    InventoryItemResponse `json:"destination_item"`
	DestinationCreated bool                  `json:"destination_created"`
	Activity           StockActivityResponse `json:"activity"`
}

// BulkTransferRequest body para POST /api/inventory/transfer/bulk.
type BulkTransferRequest struct {
	Transfers []TransferRequest `json:"transfers"`
}

// BulkTransferError fallo de una fila del lote (Index en base cero, en el orden de entrada).
type BulkTransferError struct {
	Index   int    `json:"index"`
	SKU     string `json:"sku"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BulkTransferResult reporte agregado: SuccessfulTransfers + FailedTransfers == TotalTransfers.
type BulkTransferResult struct {
	TotalTransfers      int                 `json:"total_transfers"`
	SuccessfulTransfers int                 `json:"successful_transfers"`
	FailedTransfers     int                 `json:"failed_transfers"`
	Errors              []BulkTransferError `json:"errors"`
}
