package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockify/stockify-api/internal/application/analytics"
)

// DashboardHandler expose les statistiques, alertes et graphiques du tableau de bord.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Statistiques globales
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertes de stock faible et d'expiration proche
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlerteItem
// @Router       /api/dashboard/alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.GetAlerts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Charts godoc
// @Summary      Données des graphiques du tableau de bord
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardCharts
// @Router       /api/dashboard/charts [get]
func (h *DashboardHandler) Charts(c *fiber.Ctx) error {
	out, err := h.uc.GetCharts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
