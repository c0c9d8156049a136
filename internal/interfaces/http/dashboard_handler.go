package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/analytics"
	"github.com/ivascu/gestiune-api/internal/application/dto"
)

// DashboardHandler maneja los agregados de la pantalla principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard
// @Description  Contadores, totales de venta/compra y series diarias.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("dashboard", out))
}
