package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/auth"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/infrastructure/memory"
	pkgjwt "github.com/kurbonovm/mktekhub-sub000/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func newAuth() (*auth.AuthUseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}), repo
}

func TestRegisterYLogin(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Username: "ana",
		Email:    "Ana@Example.com",
		Password: "supersecreta",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, entity.RoleManager, user.Role)
	assert.True(t, user.Active)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "supersecreta"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)

	userID, username, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "ana", username)
	assert.Equal(t, entity.RoleManager, role)
}

func TestRegister_RolPorDefectoYDuplicados(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "luis", Email: "luis@example.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, user.Role)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "luis", Email: "otro@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "otro", Email: "luis@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "x", Email: "x@example.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "x", Email: "x@example.com", Password: "12345678", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "supersecreta"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecreta"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "off", Username: "baja", Email: "baja@example.com", PasswordHash: string(hash), Active: false}))
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "baja", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
