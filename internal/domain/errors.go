package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las operaciones los envuelven con fmt.Errorf("%w: detalle", Err...) para conservar
// la clasificación con errors.Is y el mensaje legible con err.Error().
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("concurrent modification")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

// Códigos de la taxonomía de errores expuestos a transporte y reportes bulk.
const (
	KindNotFound          = "RESOURCE_NOT_FOUND"
	KindDuplicate         = "DUPLICATE_RESOURCE"
	KindInvalidOperation  = "INVALID_OPERATION"
	KindInsufficientStock = "INSUFFICIENT_STOCK"
	KindValidation        = "VALIDATION"
	KindConflict          = "CONFLICT"
	KindUnauthorized      = "UNAUTHORIZED"
	KindForbidden         = "FORBIDDEN"
	KindInternal          = "INTERNAL"
)

// Kind clasifica un error en su código de taxonomía.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrInvalidOperation):
		return KindInvalidOperation
	case errors.Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}
