package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suminitec/suministros-api/internal/application/reportes"
)

// DashboardHandler reportes financieros y rankings.
type DashboardHandler struct {
	uc *reportes.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reportes.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard resumen financiero del panel de administración.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// TopCliente ranking personal de lo más comprado por el solicitante.
func (h *DashboardHandler) TopCliente(c *fiber.Ctx) error {
	out, err := h.uc.GetTopCliente(c.UserContext(), GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
