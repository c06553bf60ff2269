package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
)

// statusFor traduce la clasificación de dominio a código HTTP.
func statusFor(kind string) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindDuplicate, domain.KindInsufficientStock, domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindInvalidOperation, domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError responde {code, message} con el status que corresponde al error.
func respondError(c *fiber.Ctx, err error) error {
	kind := domain.Kind(err)
	return c.Status(statusFor(kind)).JSON(dto.ErrorResponse{Code: kind, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// pageFrom lee limit/offset del query string con los valores por defecto.
func pageFrom(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}
