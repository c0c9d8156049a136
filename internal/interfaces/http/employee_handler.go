package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
)

// EmployeeHandler maneja empleados, sus bancos y pagos de salario.
// Todas las rutas van detrás de RequireAdmin.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create crea un empleado.
// POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("empleado creado", out))
}

// GetByID obtiene un empleado.
// GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("empleado", out))
}

// Update actualiza un empleado.
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("empleado actualizado", out))
}

// List lista empleados.
// GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("empleados", out))
}

// Delete elimina un empleado.
// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("empleado eliminado", nil))
}

// AddBank registra datos bancarios de un empleado.
// POST /api/employees/:id/banks
func (h *EmployeeHandler) AddBank(c *fiber.Ctx) error {
	var in dto.CreateEmployeeBankRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddBank(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("datos bancarios registrados", out))
}

// UpdateBank actualiza los datos bancarios de un empleado.
// PUT /api/employee-banks/:id
func (h *EmployeeHandler) UpdateBank(c *fiber.Ctx) error {
	var in dto.CreateEmployeeBankRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateBank(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("datos bancarios actualizados", out))
}

// ListBanks lista los datos bancarios de un empleado.
// GET /api/employees/:id/banks
func (h *EmployeeHandler) ListBanks(c *fiber.Ctx) error {
	out, err := h.uc.ListBanks(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("datos bancarios", out))
}

// AddSalary registra un pago de salario.
// POST /api/employees/:id/salaries
func (h *EmployeeHandler) AddSalary(c *fiber.Ctx) error {
	var in dto.CreateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddSalary(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("salario registrado", out))
}

// UpdateSalary corrige un pago de salario.
// PUT /api/employee-salaries/:id
func (h *EmployeeHandler) UpdateSalary(c *fiber.Ctx) error {
	var in dto.CreateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateSalary(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("salario actualizado", out))
}

// ListSalaries lista los pagos de salario de un empleado.
// GET /api/employees/:id/salaries
func (h *EmployeeHandler) ListSalaries(c *fiber.Ctx) error {
	out, err := h.uc.ListSalaries(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("salarios", out))
}
