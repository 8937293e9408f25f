package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/domain"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
)

// ArticleUseCase cas d'usage CRUD des articles. La quantité n'est jamais
// modifiée ici en dehors du remplacement complet via Update (admin); les
// ajustements de stock passent par les mouvements et le workflow de demandes.
type ArticleUseCase struct {
	repo       repository.ArticleRepository
	historique repository.HistoriqueRepository
}

// NewArticleUseCase construit le cas d'usage.
func NewArticleUseCase(repo repository.ArticleRepository, historique repository.HistoriqueRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo, historique: historique}
}

// Create crée un article (admin). Le payload QR est dérivé une seule fois à la
// création à partir de l'id et du nom; Update ne le re-dérive jamais.
func (uc *ArticleUseCase) Create(ctx context.Context, actorID string, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Nom == "" || in.Quantite < 0 || in.QuantiteMin < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	id := uuid.New().String()
	codeQR := fmt.Sprintf("ARTICLE:%s:%s", id, in.Nom)
	article := &entity.Article{
		ID:             id,
		Nom:            in.Nom,
		Description:    in.Description,
		Image:          in.Image,
		CodeQR:         &codeQR,
		Quantite:       in.Quantite,
		QuantiteMin:    in.QuantiteMin,
		DateExpiration: in.DateExpiration,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	uc.log(ctx, actorID, entity.ActionCreate, id, fmt.Sprintf("Créé l'article %s", in.Nom))
	return toArticleResponse(article), nil
}

// GetByID retourne un article, ErrNotFound s'il n'existe pas.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// Update remplace les champs éditables (admin). Image nil conserve l'image
// existante; le code QR n'est pas recalculé.
func (uc *ArticleUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Nom == "" || in.Quantite < 0 || in.QuantiteMin < 0 {
		return nil, domain.ErrInvalidInput
	}
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	article.Nom = in.Nom
	article.Description = in.Description
	article.Quantite = in.Quantite
	article.QuantiteMin = in.QuantiteMin
	article.DateExpiration = in.DateExpiration
	if in.Image != nil {
		article.Image = in.Image
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	uc.log(ctx, actorID, entity.ActionUpdate, id, fmt.Sprintf("Modifié l'article %s", in.Nom))
	return toArticleResponse(article), nil
}

// Delete supprime définitivement un article (admin). Les demandes et mouvements
// qui le référencent sont conservés; les listings les tolèrent via LEFT JOIN.
func (uc *ArticleUseCase) Delete(ctx context.Context, actorID, id string) error {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log(ctx, actorID, entity.ActionDelete, id, fmt.Sprintf("Supprimé l'article %s", article.Nom))
	return nil
}

// List retourne la page demandée avec le total calculé sur le même filtre.
func (uc *ArticleUseCase) List(ctx context.Context, q dto.ArticleListQuery) (*dto.ArticleListResponse, error) {
	q.Normalize()
	filter := repository.ArticleFilter{
		Search:    q.Search,
		LowStock:  q.LowStock,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}
	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Pages: dto.Pages(total, q.Limit),
	}, nil
}

// log trace l'action dans l'historique; un échec d'audit ne fait pas échouer
// l'opération principale déjà commise.
func (uc *ArticleUseCase) log(ctx context.Context, actorID, action, cibleID, description string) {
	_ = uc.historique.Create(ctx, &entity.HistoriqueAction{
		ID:          uuid.New().String(),
		UserID:      actorID,
		Action:      action,
		CibleType:   "Article",
		CibleID:     cibleID,
		Description: description,
		CreatedAt:   time.Now(),
	})
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:             a.ID,
		Nom:            a.Nom,
		Description:    a.Description,
		Image:          a.Image,
		CodeQR:         a.CodeQR,
		Quantite:       a.Quantite,
		QuantiteMin:    a.QuantiteMin,
		DateExpiration: a.DateExpiration,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
