package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
)

// ClientRequestHandler maneja solicitudes de clientes.
type ClientRequestHandler struct {
	uc *usecase.ClientRequestUseCase
}

// NewClientRequestHandler construye el handler.
func NewClientRequestHandler(uc *usecase.ClientRequestUseCase) *ClientRequestHandler {
	return &ClientRequestHandler{uc: uc}
}

// Create registra una solicitud.
// POST /api/client-requests
func (h *ClientRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("solicitud registrada", out))
}

// GetByID obtiene una solicitud.
// GET /api/client-requests/:id
func (h *ClientRequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("solicitud", out))
}

// Update actualiza una solicitud (típicamente marcarla completada).
// PUT /api/client-requests/:id
func (h *ClientRequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("solicitud actualizada", out))
}

// Delete elimina una solicitud.
// DELETE /api/client-requests/:id
func (h *ClientRequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("solicitud eliminada", nil))
}

// List lista solicitudes.
// GET /api/client-requests
func (h *ClientRequestHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("solicitudes", out))
}
