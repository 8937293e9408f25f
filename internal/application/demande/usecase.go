package demande

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

// DemandeUseCase workflow des demandes de retrait: création, consultation,
// approbation et rejet. Cycle de vie à sens unique:
// pending -> approved | rejected, toute autre transition est un conflit.
type DemandeUseCase struct {
	txRunner    TxRunner
	demandeRepo repository.DemandeRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	historique  repository.HistoriqueRepository
}

// NewDemandeUseCase construit le cas d'usage.
func NewDemandeUseCase(
	txRunner TxRunner,
	demandeRepo repository.DemandeRepository,
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	historique repository.HistoriqueRepository,
) *DemandeUseCase {
	return &DemandeUseCase{
		txRunner:    txRunner,
		demandeRepo: demandeRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		historique:  historique,
	}
}

// Create enregistre une demande pending. Aucun stock n'est réservé à la
// création: la suffisance n'est vérifiée qu'au moment de l'approbation.
// ErrNotFound si l'article n'existe pas, ErrInvalidInput si la quantité
// demandée n'est pas strictement positive.
func (uc *DemandeUseCase) Create(ctx context.Context, requesterID string, in dto.CreateDemandeRequest) (*dto.DemandeResponse, error) {
	if in.QuantiteDemandee <= 0 {
		return nil, domain.ErrInvalidInput
	}
	requester, err := uc.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, domain.ErrUserNotFound
	}
	article, err := uc.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	d := &entity.Demande{
		ID:               uuid.New().String(),
		UserID:           requester.ID,
		ArticleID:        in.ArticleID,
		QuantiteDemandee: in.QuantiteDemandee,
		Statut:           entity.DemandeStatusPending,
		DateDemande:      now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.demandeRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	_ = uc.historique.Create(ctx, &entity.HistoriqueAction{
		ID:          uuid.New().String(),
		UserID:      requester.ID,
		Action:      entity.ActionCreate,
		CibleType:   "Demande",
		CibleID:     d.ID,
		Description: fmt.Sprintf("Demande de %d %s", in.QuantiteDemandee, article.Nom),
		CreatedAt:   now,
	})
	return &dto.DemandeResponse{
		ID:               d.ID,
		UserID:           d.UserID,
		ArticleID:        d.ArticleID,
		QuantiteDemandee: d.QuantiteDemandee,
		Statut:           d.Statut,
		DateDemande:      d.DateDemande,
		UserNom:          &requester.Nom,
		ArticleNom:       &article.Nom,
	}, nil
}

// List retourne les demandes visibles par l'acteur: les siennes pour un
// utilisateur, toutes pour un admin. La recherche texte est appliquée en SQL
// avant le comptage, donc total et pages restent cohérents sous filtre.
func (uc *DemandeUseCase) List(ctx context.Context, actorID, actorRole string, q dto.DemandeListQuery) (*dto.DemandeListResponse, error) {
	q.Normalize()
	if q.Statut != "" && !entity.ValidDemandeStatus(q.Statut) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.DemandeFilter{
		Statut:    q.Statut,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}
	if actorRole != entity.RoleAdmin {
		filter.UserID = actorID
	}
	rows, total, err := uc.demandeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DemandeResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.DemandeResponse{
			ID:               r.ID,
			UserID:           r.UserID,
			ArticleID:        r.ArticleID,
			QuantiteDemandee: r.QuantiteDemandee,
			Statut:           r.Statut,
			DateDemande:      r.DateDemande,
			UserNom:          r.UserNom,
			ArticleNom:       r.ArticleNom,
		})
	}
	return &dto.DemandeListResponse{
		Items: items,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Pages: dto.Pages(total, q.Limit),
	}, nil
}

// Approve approuve une demande pending (admin). Les quatre écritures (bascule
// de statut, décrément de stock, mouvement sortie, historique) s'exécutent
// dans une seule transaction:
//
//   - statut déjà terminal, ou perdu face à un approbateur concurrent
//     (UPDATE ... WHERE statut = 'pending' touche 0 ligne) -> ErrConflict;
//   - stock insuffisant (UPDATE ... WHERE quantite >= N touche 0 ligne)
//     -> ErrInsufficientStock, et le rollback annule la bascule de statut;
//   - demande ou article absent -> ErrNotFound.
//
// Deux admins approuvant la même demande: un seul décrémente le stock, l'autre
// observe ErrConflict. Jamais de double décrément ni de stock négatif.
func (uc *DemandeUseCase) Approve(ctx context.Context, adminID, demandeID string) error {
	return uc.txRunner.Run(ctx, func(
		demandes repository.DemandeRepository,
		articles repository.ArticleRepository,
		mouvements repository.MouvementRepository,
		historique repository.HistoriqueRepository,
	) error {
		d, err := demandes.GetByID(ctx, demandeID)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.Statut != entity.DemandeStatusPending {
			return domain.ErrConflict
		}
		article, err := articles.GetByID(ctx, d.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}

		ok, err := demandes.UpdateStatutIfPending(ctx, demandeID, entity.DemandeStatusApproved)
		if err != nil {
			return err
		}
		if !ok {
			// Un approbateur concurrent a gagné entre le GetByID et ici.
			return domain.ErrConflict
		}
		if err := articles.DecrementerQuantite(ctx, d.ArticleID, d.QuantiteDemandee); err != nil {
			return err
		}

		now := time.Now()
		demandeRef := demandeID
		if err := mouvements.Create(ctx, &entity.Mouvement{
			ID:            uuid.New().String(),
			ArticleID:     d.ArticleID,
			Type:          entity.MouvementSortie,
			Quantite:      d.QuantiteDemandee,
			UtilisateurID: adminID,
			Raison:        fmt.Sprintf("Demande approuvée #%s", demandeID),
			DemandeID:     &demandeRef,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		return historique.Create(ctx, &entity.HistoriqueAction{
			ID:          uuid.New().String(),
			UserID:      adminID,
			Action:      entity.ActionApprove,
			CibleType:   "Demande",
			CibleID:     demandeID,
			Description: fmt.Sprintf("Approuvé la demande #%s", demandeID),
			CreatedAt:   now,
		})
	})
}

// Reject rejette une demande pending (admin). Aucun effet sur le stock ni le
// grand-livre; ErrConflict si la demande n'est plus pending.
func (uc *DemandeUseCase) Reject(ctx context.Context, adminID, demandeID string) error {
	return uc.txRunner.Run(ctx, func(
		demandes repository.DemandeRepository,
		_ repository.ArticleRepository,
		_ repository.MouvementRepository,
		historique repository.HistoriqueRepository,
	) error {
		d, err := demandes.GetByID(ctx, demandeID)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.Statut != entity.DemandeStatusPending {
			return domain.ErrConflict
		}
		ok, err := demandes.UpdateStatutIfPending(ctx, demandeID, entity.DemandeStatusRejected)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		return historique.Create(ctx, &entity.HistoriqueAction{
			ID:          uuid.New().String(),
			UserID:      adminID,
			Action:      entity.ActionReject,
			CibleType:   "Demande",
			CibleID:     demandeID,
			Description: fmt.Sprintf("Rejeté la demande #%s", demandeID),
			CreatedAt:   time.Now(),
		})
	})
}
