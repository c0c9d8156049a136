package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
)

// SupplierHandler maneja proveedores, sus bancos y su cuenta corriente.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create crea un proveedor.
// POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("proveedor creado", out))
}

// GetByID obtiene un proveedor.
// GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("proveedor", out))
}

// Update actualiza un proveedor.
// PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("proveedor actualizado", out))
}

// List lista proveedores.
// GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("proveedores", out))
}

// Delete elimina un proveedor.
// DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("proveedor eliminado", nil))
}

// AddBank registra datos bancarios de un proveedor.
// POST /api/suppliers/:id/banks
func (h *SupplierHandler) AddBank(c *fiber.Ctx) error {
	var in dto.CreateSupplierBankRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddBank(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("datos bancarios registrados", out))
}

// UpdateBank actualiza los datos bancarios de un proveedor.
// PUT /api/supplier-banks/:id
func (h *SupplierHandler) UpdateBank(c *fiber.Ctx) error {
	var in dto.CreateSupplierBankRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateBank(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("datos bancarios actualizados", out))
}

// ListBanks lista los datos bancarios de un proveedor.
// GET /api/suppliers/:id/banks
func (h *SupplierHandler) ListBanks(c *fiber.Ctx) error {
	out, err := h.uc.ListBanks(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("datos bancarios", out))
}

// AddAccountEntry registra un movimiento en la cuenta corriente.
// POST /api/supplier-accounts
func (h *SupplierHandler) AddAccountEntry(c *fiber.Ctx) error {
	var in dto.CreateSupplierAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddAccountEntry(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("movimiento registrado", out))
}

// UpdateAccountEntry corrige un movimiento de cuenta corriente.
// PUT /api/supplier-accounts/:id
func (h *SupplierHandler) UpdateAccountEntry(c *fiber.Ctx) error {
	var in dto.CreateSupplierAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateAccountEntry(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("movimiento actualizado", out))
}

// ListAccountEntries lista movimientos de cuenta corriente.
// GET /api/supplier-accounts
func (h *SupplierHandler) ListAccountEntries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.ListAccountEntries(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("movimientos", out))
}
