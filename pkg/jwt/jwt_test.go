package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/kurbonovm/mktekhub-sub000/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "operador", "manager", "stock-engine-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "operador", username)
	assert.Equal(t, "manager", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "operador", "admin", "stock-engine-test", -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "operador", "admin", "stock-engine-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "operador", "admin", "x", 60)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)

	_, _, _, err = pkgjwt.Parse("", "cualquier.cosa.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}
