package mouvement

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

// MouvementUseCase grand-livre des mouvements de stock: création manuelle
// (admin) et consultation. Chaque mouvement applique son délta via une mise à
// jour conditionnelle atomique, même chemin que l'approbation des demandes.
type MouvementUseCase struct {
	txRunner      TxRunner
	mouvementRepo repository.MouvementRepository
}

// NewMouvementUseCase construit le cas d'usage.
func NewMouvementUseCase(txRunner TxRunner, mouvementRepo repository.MouvementRepository) *MouvementUseCase {
	return &MouvementUseCase{txRunner: txRunner, mouvementRepo: mouvementRepo}
}

// Create enregistre un mouvement manuel et applique le délta au stock dans la
// même transaction. entree: +quantite; sortie: -quantite seulement si le stock
// suffit (ErrInsufficientStock sinon, le stock ne passe jamais sous zéro).
// ErrNotFound si l'article n'existe pas, ErrInvalidInput si le type est
// inconnu ou la quantité non strictement positive.
func (uc *MouvementUseCase) Create(ctx context.Context, adminID string, in dto.CreateMouvementRequest) error {
	if !entity.ValidMouvementType(in.Type) || in.Quantite <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunMouvement(ctx, func(
		articles repository.ArticleRepository,
		mouvements repository.MouvementRepository,
		historique repository.HistoriqueRepository,
	) error {
		article, err := articles.GetByID(ctx, in.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}
		switch in.Type {
		case entity.MouvementEntree:
			err = articles.AjusterQuantite(ctx, in.ArticleID, in.Quantite)
		case entity.MouvementSortie:
			err = articles.DecrementerQuantite(ctx, in.ArticleID, in.Quantite)
		}
		if err != nil {
			return err
		}
		now := time.Now()
		mouvementID := uuid.New().String()
		if err := mouvements.Create(ctx, &entity.Mouvement{
			ID:            mouvementID,
			ArticleID:     in.ArticleID,
			Type:          in.Type,
			Quantite:      in.Quantite,
			UtilisateurID: adminID,
			Raison:        in.Raison,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		return historique.Create(ctx, &entity.HistoriqueAction{
			ID:          uuid.New().String(),
			UserID:      adminID,
			Action:      entity.ActionCreate,
			CibleType:   "Mouvement",
			CibleID:     mouvementID,
			Description: fmt.Sprintf("Mouvement %s de %d %s", in.Type, in.Quantite, article.Nom),
			CreatedAt:   now,
		})
	})
}

// List retourne les mouvements (admin), filtres type/dates/recherche, la
// recherche étant appliquée en SQL avant le comptage.
func (uc *MouvementUseCase) List(ctx context.Context, q dto.MouvementListQuery) (*dto.MouvementListResponse, error) {
	q.Normalize()
	if q.Type != "" && !entity.ValidMouvementType(q.Type) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.MouvementFilter{
		Type:      q.Type,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}
	var err error
	if filter.From, err = parseDate(q.From); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.To, err = parseDate(q.To); err != nil {
		return nil, domain.ErrInvalidInput
	}
	rows, total, err := uc.mouvementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MouvementResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MouvementResponse{
			ID:            r.ID,
			ArticleID:     r.ArticleID,
			Type:          r.Type,
			Quantite:      r.Quantite,
			UtilisateurID: r.UtilisateurID,
			Raison:        r.Raison,
			DemandeID:     r.DemandeID,
			ArticleNom:    r.ArticleNom,
			UserNom:       r.UserNom,
			CreatedAt:     r.CreatedAt,
		})
	}
	return &dto.MouvementListResponse{
		Items: items,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Pages: dto.Pages(total, q.Limit),
	}, nil
}

// parseDate accepte RFC 3339 ou la forme courte YYYY-MM-DD.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
