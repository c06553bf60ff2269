// Package memory implementa los puertos de persistencia sobre un estado en memoria
// con transacciones: TxRunner trabaja sobre una copia y solo la publica si el
// callback termina sin error. Se usa en tests y con STORE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

type state struct {
	users      map[string]entity.User
	warehouses map[string]entity.Warehouse
	items      map[string]entity.InventoryItem
	activities []entity.StockActivity
}

func newState() state {
	return state{
		users:      map[string]entity.User{},
		warehouses: map[string]entity.Warehouse{},
		items:      map[string]entity.InventoryItem{},
	}
}

// clone copia el estado; las entidades se guardan por valor.
func (s state) clone() state {
	c := state{
		users:      make(map[string]entity.User, len(s.users)),
		warehouses: make(map[string]entity.Warehouse, len(s.warehouses)),
		items:      make(map[string]entity.InventoryItem, len(s.items)),
		activities: make([]entity.StockActivity, len(s.activities), len(s.activities)+8),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	copy(c.activities, s.activities)
	return c
}

// accessor abstrae el acceso al estado: con lock (Store) o dentro de una tx (ya bloqueada).
type accessor interface {
	view(fn func(st *state))
	update(fn func(st *state) error) error
}

// Store estado compartido protegido por un RWMutex.
type Store struct {
	mu sync.RWMutex
	st state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) view(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.st)
}

func (s *Store) update(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.st)
}

// txScope acceso al estado de trabajo de una transacción; el lock lo tiene TxRunner.
type txScope struct {
	st *state
}

func (t txScope) view(fn func(st *state))              { fn(t.st) }
func (t txScope) update(fn func(st *state) error) error { return fn(t.st) }

// TxRunner serializa las transacciones sobre el Store.
// Los repositorios del Store no deben usarse dentro de fn: el lock ya está tomado.
type TxRunner struct {
	store *Store
}

var _ inventory.TxRunner = (*TxRunner)(nil)

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn sobre una copia del estado; si fn falla la copia se descarta.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	warehouseRepo repository.WarehouseRepository,
	activityRepo repository.StockActivityRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	working := r.store.st.clone()
	scope := txScope{st: &working}
	if err := fn(&ItemRepo{db: scope}, &WarehouseRepo{db: scope}, &ActivityRepo{db: scope}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.st = working
	return nil
}

// paginate aplica offset/limit (limit <= 0: sin límite).
func paginate[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return list[:0]
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
