package repository

import (
	"context"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (identidad del performer).
// Los Get devuelven (nil, nil) cuando no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
