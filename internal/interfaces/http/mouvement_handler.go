package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/application/mouvement"
)

// MouvementHandler expose les mouvements de stock manuels (admin seulement).
type MouvementHandler struct {
	uc *mouvement.MouvementUseCase
}

func NewMouvementHandler(uc *mouvement.MouvementUseCase) *MouvementHandler {
	return &MouvementHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer un mouvement de stock (admin)
// @Description  Un mouvement "entree" augmente la quantité de l'article, un "sortie" la diminue.
// @Tags         mouvements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateMouvementRequest  true  "Mouvement"
// @Success      201  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse  "Stock insuffisant ou type invalide"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mouvements [post]
func (h *MouvementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMouvementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	if err := h.uc.Create(c.Context(), GetUserID(c), in); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "mouvement enregistré"})
}

// List godoc
// @Summary      Lister les mouvements de stock (admin)
// @Tags         mouvements
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Page (>=1)"             default(1)
// @Param        limit   query  int     false  "Taille de page [1,100]" default(20)
// @Param        search  query  string  false  "Recherche article/raison"
// @Param        type    query  string  false  "entree, sortie"
// @Param        from    query  string  false  "Date de début (RFC 3339 ou YYYY-MM-DD)"
// @Param        to      query  string  false  "Date de fin (RFC 3339 ou YYYY-MM-DD)"
// @Success      200  {object}  dto.MouvementListResponse
// @Router       /api/mouvements [get]
func (h *MouvementHandler) List(c *fiber.Ctx) error {
	var q dto.MouvementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paramètres invalides"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
