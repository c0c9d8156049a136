package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
)

// respondError mapea errores de dominio a status HTTP con la envoltura
// {"error": true, "message": ...}. El mensaje de stock insuficiente llega al
// cliente tal cual (incluye producto y unidades disponibles).
func respondError(c *fiber.Ctx, err error) error {
	if stockErr, ok := domain.AsInsufficientStock(err); ok {
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(stockErr.Error()))
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("datos inválidos"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("acceso denegado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("el recurso ya existe"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("conflicto de concurrencia, reintente"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno"))
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(message))
}
