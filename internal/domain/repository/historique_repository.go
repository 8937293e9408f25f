package repository

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// HistoriqueRow entrée d'historique enrichie du nom de l'acteur.
type HistoriqueRow struct {
	entity.HistoriqueAction
	UserNom *string
}

// HistoriqueRepository définit le port de persistance pour l'historique d'actions.
// Append-only: pas d'Update ni de Delete.
type HistoriqueRepository interface {
	Create(ctx context.Context, action *entity.HistoriqueAction) error
	// List retourne les entrées les plus récentes d'abord, limitées à limit.
	// userID vide = toutes les entrées (acteur admin).
	List(ctx context.Context, userID string, limit int) ([]*HistoriqueRow, error)
}
