package memory

import (
	"context"
	"fmt"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// ActivityRepo historial append-only en memoria.
type ActivityRepo struct {
	db accessor
}

var _ repository.StockActivityRepository = (*ActivityRepo)(nil)

// NewStockActivityRepository crea el repositorio sobre el store.
func NewStockActivityRepository(store *Store) *ActivityRepo {
	return &ActivityRepo{db: store}
}

// Create agrega la actividad al final del historial.
func (r *ActivityRepo) Create(_ context.Context, a *entity.StockActivity) error {
	return r.db.update(func(st *state) error {
		for i := range st.activities {
			if st.activities[i].ID == a.ID {
				return fmt.Errorf("%w: activity %s already exists", domain.ErrDuplicate, a.ID)
			}
		}
		st.activities = append(st.activities, *a)
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ActivityRepo) GetByID(_ context.Context, id string) (*entity.StockActivity, error) {
	var out *entity.StockActivity
	r.db.view(func(st *state) {
		for i := range st.activities {
			if st.activities[i].ID == id {
				a := st.activities[i]
				out = &a
				return
			}
		}
	})
	return out, nil
}

// List recorre el historial del más reciente al más antiguo (orden de inserción inverso).
func (r *ActivityRepo) List(_ context.Context, filter repository.ActivityFilter) ([]*entity.StockActivity, error) {
	var list []*entity.StockActivity
	r.db.view(func(st *state) {
		for i := len(st.activities) - 1; i >= 0; i-- {
			a := st.activities[i]
			if !matchesActivity(a, filter) {
				continue
			}
			list = append(list, &a)
		}
	})
	return paginate(list, filter.Limit, filter.Offset), nil
}

func matchesActivity(a entity.StockActivity, f repository.ActivityFilter) bool {
	if f.ItemID != "" && a.ItemID != f.ItemID {
		return false
	}
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.WarehouseID != "" {
		dest := a.DestinationWarehouseID != nil && *a.DestinationWarehouseID == f.WarehouseID
		if a.WarehouseID != f.WarehouseID && !dest {
			return false
		}
	}
	return true
}
