package memory

import (
	"context"
	"fmt"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

// UserRepo implementación en memoria de repository.UserRepository.
type UserRepo struct {
	db accessor
}

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepository crea el repositorio sobre el store.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{db: store}
}

// Create inserta el usuario; username y email son únicos.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.db.update(func(st *state) error {
		for _, other := range st.users {
			if other.ID == u.ID || other.Username == u.Username || other.Email == u.Email {
				return fmt.Errorf("%w: user already exists", domain.ErrDuplicate)
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id }), nil
}

// GetByUsername devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username }), nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) find(match func(entity.User) bool) *entity.User {
	var out *entity.User
	r.db.view(func(st *state) {
		for _, u := range st.users {
			if match(u) {
				u := u
				out = &u
				return
			}
		}
	})
	return out
}
