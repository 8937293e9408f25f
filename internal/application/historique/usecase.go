package historique

import (
	"context"

	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
)

// Plafond des entrées retournées, les plus récentes d'abord.
const listMax = 100

// HistoriqueUseCase consultation de l'historique d'actions.
type HistoriqueUseCase struct {
	repo repository.HistoriqueRepository
}

// NewHistoriqueUseCase construit le cas d'usage.
func NewHistoriqueUseCase(repo repository.HistoriqueRepository) *HistoriqueUseCase {
	return &HistoriqueUseCase{repo: repo}
}

// List retourne l'historique visible par l'acteur: ses propres actions pour un
// utilisateur, tout pour un admin. Plafonné aux 100 plus récentes.
func (uc *HistoriqueUseCase) List(ctx context.Context, actorID, actorRole string) ([]dto.HistoriqueResponse, error) {
	userID := ""
	if actorRole != entity.RoleAdmin {
		userID = actorID
	}
	rows, err := uc.repo.List(ctx, userID, listMax)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoriqueResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.HistoriqueResponse{
			ID:          r.ID,
			UserID:      r.UserID,
			Action:      r.Action,
			CibleType:   r.CibleType,
			CibleID:     r.CibleID,
			Description: r.Description,
			UserNom:     r.UserNom,
			CreatedAt:   r.CreatedAt,
		})
	}
	return items, nil
}
