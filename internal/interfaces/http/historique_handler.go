package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockify/stockify-api/internal/application/historique"
)

// HistoriqueHandler expose le journal d'audit des actions.
type HistoriqueHandler struct {
	uc *historique.HistoriqueUseCase
}

func NewHistoriqueHandler(uc *historique.HistoriqueUseCase) *HistoriqueHandler {
	return &HistoriqueHandler{uc: uc}
}

// List godoc
// @Summary      Lister l'historique des actions
// @Description  Les admins voient les 100 dernières actions globales, les autres uniquement les leurs.
// @Tags         historique
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HistoriqueResponse
// @Router       /api/historique [get]
func (h *HistoriqueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
