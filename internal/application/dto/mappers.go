package dto

import "github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"

// FromInventoryItem convierte la entidad en su salida con volumen total derivado.
func FromInventoryItem(i *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:             i.ID,
		SKU:            i.SKU,
		Name:           i.Name,
		Description:    i.Description,
		Category:       i.Category,
		Brand:          i.Brand,
		UnitPrice:      i.UnitPrice,
		VolumePerUnit:  i.VolumePerUnit,
		TotalVolume:    i.TotalVolume(),
		Quantity:       i.Quantity,
		ReorderLevel:   i.ReorderLevel,
		LowStock:       i.IsLowStock(),
		WarehouseID:    i.WarehouseID,
		ExpirationDate: i.ExpirationDate,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// FromWarehouse convierte la entidad en su salida; la utilización se redondea a 2 decimales.
func FromWarehouse(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:                     w.ID,
		Name:                   w.Name,
		Location:               w.Location,
		MaxCapacity:            w.MaxCapacity,
		CurrentCapacity:        w.CurrentCapacity,
		AvailableCapacity:      w.AvailableCapacity(),
		CapacityAlertThreshold: w.CapacityAlertThreshold,
		UtilizationPercentage:  w.UtilizationPercentage().Round(2),
		CapacityAlert:          w.IsCapacityAlert(),
		IsActive:               w.IsActive,
		CreatedAt:              w.CreatedAt,
		UpdatedAt:              w.UpdatedAt,
	}
}

// FromStockActivity convierte la entidad de auditoría en su salida.
func FromStockActivity(a *entity.StockActivity) StockActivityResponse {
	return StockActivityResponse{
		ID:                     a.ID,
		ItemID:                 a.ItemID,
		SKU:                    a.SKU,
		WarehouseID:            a.WarehouseID,
		Type:                   a.Type,
		QuantityChange:         a.QuantityChange,
		PreviousQuantity:       a.PreviousQuantity,
		NewQuantity:            a.NewQuantity,
		PerformedBy:            a.PerformedBy,
		PerformedByUsername:    a.PerformedByUsername,
		Timestamp:              a.Timestamp,
		Notes:                  a.Notes,
		SourceWarehouseID:      a.SourceWarehouseID,
		DestinationWarehouseID: a.DestinationWarehouseID,
	}
}

// FromUser convierte la entidad en su salida (sin hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
