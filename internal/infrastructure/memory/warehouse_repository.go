package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// WarehouseRepo implementación en memoria de repository.WarehouseRepository.
type WarehouseRepo struct {
	db accessor
}

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// NewWarehouseRepository crea el repositorio sobre el store.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{db: store}
}

// Create inserta la bodega; el nombre es único.
func (r *WarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	return r.db.update(func(st *state) error {
		if _, ok := st.warehouses[w.ID]; ok {
			return fmt.Errorf("%w: warehouse %s already exists", domain.ErrDuplicate, w.ID)
		}
		for _, other := range st.warehouses {
			if other.Name == w.Name {
				return fmt.Errorf("%w: warehouse name %q already exists", domain.ErrDuplicate, w.Name)
			}
		}
		w.Version = 1
		st.warehouses[w.ID] = *w
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	r.db.view(func(st *state) {
		if w, ok := st.warehouses[id]; ok {
			out = &w
		}
	})
	return out, nil
}

// GetByName devuelve (nil, nil) si no existe.
func (r *WarehouseRepo) GetByName(_ context.Context, name string) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	r.db.view(func(st *state) {
		for _, w := range st.warehouses {
			if w.Name == name {
				w := w
				out = &w
				return
			}
		}
	})
	return out, nil
}

// Update guarda la bodega si su versión coincide con la almacenada.
func (r *WarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	return r.db.update(func(st *state) error {
		stored, ok := st.warehouses[w.ID]
		if !ok {
			return fmt.Errorf("%w: warehouse not found", domain.ErrNotFound)
		}
		if stored.Version != w.Version {
			return fmt.Errorf("%w: warehouse %s", domain.ErrConflict, w.ID)
		}
		for id, other := range st.warehouses {
			if id != w.ID && other.Name == w.Name {
				return fmt.Errorf("%w: warehouse name %q already exists", domain.ErrDuplicate, w.Name)
			}
		}
		w.Version++
		st.warehouses[w.ID] = *w
		return nil
	})
}

// List ordena por nombre.
func (r *WarehouseRepo) List(_ context.Context, filter repository.WarehouseFilter) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	r.db.view(func(st *state) {
		for _, w := range st.warehouses {
			if filter.ActiveOnly && !w.IsActive {
				continue
			}
			w := w
			list = append(list, &w)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, filter.Limit, filter.Offset), nil
}

// Delete elimina la bodega y sus registros de inventario si nada la modificó desde que se leyó.
func (r *WarehouseRepo) Delete(_ context.Context, w *entity.Warehouse) error {
	return r.db.update(func(st *state) error {
		stored, ok := st.warehouses[w.ID]
		if !ok {
			return fmt.Errorf("%w: warehouse not found", domain.ErrNotFound)
		}
		if stored.Version != w.Version || stored.HasInventory() {
			return fmt.Errorf("%w: warehouse %s", domain.ErrConflict, w.ID)
		}
		for itemID, item := range st.items {
			if item.WarehouseID == w.ID {
				delete(st.items, itemID)
			}
		}
		delete(st.warehouses, w.ID)
		return nil
	})
}
