package http

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/application/article"
	"github.com/stockify/stockify-api/internal/application/dto"
)

// ArticleHandler gère les requêtes HTTP des articles.
// Les écritures (POST/PUT/DELETE) sont réservées aux admins via RequireRole.
type ArticleHandler struct {
	uc        *article.ArticleUseCase
	uploadDir string
}

// NewArticleHandler construit le handler. uploadDir est le répertoire local
// où sont stockées les images, servi statiquement sous /uploads.
func NewArticleHandler(uc *article.ArticleUseCase, uploadDir string) *ArticleHandler {
	return &ArticleHandler{uc: uc, uploadDir: uploadDir}
}

// articleForm extrait les champs multipart communs à Create et Update.
func (h *ArticleHandler) articleForm(c *fiber.Ctx) (nom, description string, quantite, quantiteMin int, dateExp *time.Time, err error) {
	nom = c.FormValue("nom")
	description = c.FormValue("description")
	quantite, err = strconv.Atoi(c.FormValue("quantite"))
	if err != nil {
		return "", "", 0, 0, nil, fmt.Errorf("quantite invalide")
	}
	quantiteMin, err = strconv.Atoi(c.FormValue("quantite_min"))
	if err != nil {
		return "", "", 0, 0, nil, fmt.Errorf("quantite_min invalide")
	}
	if raw := c.FormValue("date_expiration"); raw != "" {
		t, perr := parseFormDate(raw)
		if perr != nil {
			return "", "", 0, 0, nil, fmt.Errorf("date_expiration invalide")
		}
		dateExp = &t
	}
	return nom, description, quantite, quantiteMin, dateExp, nil
}

// saveImage persiste le fichier image éventuel et retourne son chemin relatif
// ("uploads/<id>_<nom de fichier>"), ou nil si aucun fichier n'est joint.
func (h *ArticleHandler) saveImage(c *fiber.Ctx, articleID string) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil // pas de fichier joint
	}
	name := articleID + "_" + filepath.Base(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return nil, fmt.Errorf("enregistrer l'image: %w", err)
	}
	rel := "uploads/" + name
	return &rel, nil
}

func newUploadID() string { return uuid.NewString() }

func parseFormDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// List godoc
// @Summary      Lister les articles
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        page        query  int     false  "Page (>=1)"             default(1)
// @Param        limit       query  int     false  "Taille de page [1,100]" default(20)
// @Param        search      query  string  false  "Recherche nom/description"
// @Param        sort_by     query  string  false  "nom, quantite, quantite_min, date_expiration, created_at"
// @Param        sort_order  query  string  false  "asc, desc"
// @Param        low_stock   query  bool    false  "Seulement le stock faible"
// @Success      200  {object}  dto.ArticleListResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	var q dto.ArticleListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paramètres invalides"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un article par ID
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de l'article"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Créer un article (admin)
// @Tags         articles
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        nom              formData  string  true   "Nom"
// @Param        description      formData  string  true   "Description"
// @Param        quantite         formData  int     true   "Quantité initiale"
// @Param        quantite_min     formData  int     true   "Seuil de stock minimum"
// @Param        date_expiration  formData  string  false  "Date d'expiration (RFC 3339 ou YYYY-MM-DD)"
// @Param        image            formData  file    false  "Image"
// @Success      201  {object}  dto.ArticleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	nom, description, quantite, quantiteMin, dateExp, err := h.articleForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	// L'image est nommée d'après un identifiant aléatoire propre au fichier:
	// l'ID de l'article n'existe pas encore à ce stade.
	image, err := h.saveImage(c, newUploadID())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), dto.CreateArticleRequest{
		Nom:            nom,
		Description:    description,
		Quantite:       quantite,
		QuantiteMin:    quantiteMin,
		DateExpiration: dateExp,
		Image:          image,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Mettre à jour un article (admin)
// @Tags         articles
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  string  true  "ID de l'article"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	nom, description, quantite, quantiteMin, dateExp, err := h.articleForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	image, err := h.saveImage(c, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), id, dto.UpdateArticleRequest{
		Nom:            nom,
		Description:    description,
		Quantite:       quantite,
		QuantiteMin:    quantiteMin,
		DateExpiration: dateExp,
		Image:          image,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un article (admin)
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de l'article"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "article supprimé"})
}
