package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockify/stockify-api/internal/application/demande"
	"github.com/stockify/stockify-api/internal/application/dto"
)

// DemandeHandler gère le cycle de vie des demandes de stock.
type DemandeHandler struct {
	uc *demande.DemandeUseCase
}

func NewDemandeHandler(uc *demande.DemandeUseCase) *DemandeHandler {
	return &DemandeHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une demande de stock
// @Tags         demandes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateDemandeRequest  true  "Demande"
// @Success      201  {object}  dto.DemandeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/demandes [post]
func (h *DemandeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDemandeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les demandes
// @Description  Les admins voient toutes les demandes, les autres uniquement les leurs.
// @Tags         demandes
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Page (>=1)"             default(1)
// @Param        limit   query  int     false  "Taille de page [1,100]" default(20)
// @Param        search  query  string  false  "Recherche demandeur/article"
// @Param        statut  query  string  false  "pending, approved, rejected"
// @Success      200  {object}  dto.DemandeListResponse
// @Router       /api/demandes [get]
func (h *DemandeHandler) List(c *fiber.Ctx) error {
	var q dto.DemandeListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paramètres invalides"})
	}
	out, err := h.uc.List(c.Context(), GetUserID(c), GetRole(c), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Approuver une demande (admin)
// @Description  Décrémente le stock de l'article et enregistre un mouvement de sortie.
// @Tags         demandes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la demande"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse  "Stock insuffisant"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Demande déjà traitée"
// @Router       /api/demandes/{id}/approve [put]
func (h *DemandeHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "demande approuvée"})
}

// Reject godoc
// @Summary      Rejeter une demande (admin)
// @Tags         demandes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la demande"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Demande déjà traitée"
// @Router       /api/demandes/{id}/reject [put]
func (h *DemandeHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "demande rejetée"})
}
