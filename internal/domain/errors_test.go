package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
)

func TestKind_ClasificaErroresEnvueltos(t *testing.T) {
	cases := map[string]error{
		domain.KindNotFound:          fmt.Errorf("%w: item not found in source warehouse", domain.ErrNotFound),
		domain.KindDuplicate:         fmt.Errorf("%w: warehouse name already exists", domain.ErrDuplicate),
		domain.KindInvalidOperation:  fmt.Errorf("%w: source and destination must differ", domain.ErrInvalidOperation),
		domain.KindInsufficientStock: domain.ErrInsufficientStock,
		domain.KindValidation:        domain.ErrInvalidInput,
		domain.KindConflict:          fmt.Errorf("update item: %w", domain.ErrConflict),
		domain.KindInternal:          errors.New("connection reset"),
	}
	for want, err := range cases {
		assert.Equal(t, want, domain.Kind(err), err.Error())
	}
	assert.Equal(t, "", domain.Kind(nil))
}
