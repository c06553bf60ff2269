package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// ItemRepo implementación en memoria de repository.InventoryItemRepository.
type ItemRepo struct {
	db accessor
}

var _ repository.InventoryItemRepository = (*ItemRepo)(nil)

// NewInventoryItemRepository crea el repositorio sobre el store.
func NewInventoryItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{db: store}
}

// copyItem evita compartir ExpirationDate con el estado almacenado.
func copyItem(item entity.InventoryItem) *entity.InventoryItem {
	if item.ExpirationDate != nil {
		exp := *item.ExpirationDate
		item.ExpirationDate = &exp
	}
	return &item
}

func skuTaken(st *state, sku, warehouseID, exceptID string) bool {
	for id, other := range st.items {
		if id != exceptID && other.SKU == sku && other.WarehouseID == warehouseID {
			return true
		}
	}
	return false
}

// Create inserta el registro; (SKU, bodega) es único.
func (r *ItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	return r.db.update(func(st *state) error {
		if _, ok := st.items[item.ID]; ok {
			return fmt.Errorf("%w: item %s already exists", domain.ErrDuplicate, item.ID)
		}
		if skuTaken(st, item.SKU, item.WarehouseID, "") {
			return fmt.Errorf("%w: item with sku %s already exists in warehouse", domain.ErrDuplicate, item.SKU)
		}
		item.Version = 1
		st.items[item.ID] = *copyItem(*item)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	r.db.view(func(st *state) {
		if item, ok := st.items[id]; ok {
			out = copyItem(item)
		}
	})
	return out, nil
}

// FindBySKUAndWarehouse busca el registro del SKU en la bodega.
func (r *ItemRepo) FindBySKUAndWarehouse(_ context.Context, sku, warehouseID string) (repository.ItemLookup, error) {
	lookup := repository.NotFound()
	r.db.view(func(st *state) {
		for _, item := range st.items {
			if item.SKU == sku && item.WarehouseID == warehouseID {
				lookup = repository.Found(copyItem(item))
				return
			}
		}
	})
	return lookup, nil
}

// Update guarda el registro si su versión coincide con la almacenada.
func (r *ItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	return r.db.update(func(st *state) error {
		stored, ok := st.items[item.ID]
		if !ok {
			return fmt.Errorf("%w: inventory item not found", domain.ErrNotFound)
		}
		if stored.Version != item.Version {
			return fmt.Errorf("%w: inventory item %s", domain.ErrConflict, item.ID)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
		}
		if skuTaken(st, item.SKU, item.WarehouseID, item.ID) {
			return fmt.Errorf("%w: item with sku %s already exists in warehouse", domain.ErrDuplicate, item.SKU)
		}
		item.Version++
		st.items[item.ID] = *copyItem(*item)
		return nil
	})
}

// Delete elimina el registro.
func (r *ItemRepo) Delete(_ context.Context, id string) error {
	return r.db.update(func(st *state) error {
		if _, ok := st.items[id]; !ok {
			return fmt.Errorf("%w: inventory item not found", domain.ErrNotFound)
		}
		delete(st.items, id)
		return nil
	})
}

// List ordena por SKU y luego por bodega.
func (r *ItemRepo) List(_ context.Context, filter repository.ItemFilter) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	r.db.view(func(st *state) {
		for _, item := range st.items {
			switch {
			case filter.WarehouseID != "" && item.WarehouseID != filter.WarehouseID,
				filter.SKU != "" && item.SKU != filter.SKU,
				filter.Category != "" && item.Category != filter.Category,
				filter.LowStockOnly && !item.IsLowStock():
				continue
			}
			list = append(list, copyItem(item))
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].SKU != list[j].SKU {
			return list[i].SKU < list[j].SKU
		}
		return list[i].WarehouseID < list[j].WarehouseID
	})
	return paginate(list, filter.Limit, filter.Offset), nil
}
