package repository

import (
	"context"
	"time"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// DashboardRepository requêtes read-only d'agrégation pour le tableau de bord.
type DashboardRepository interface {
	CountArticles(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountDemandes(ctx context.Context) (int, error)
	// CountLowStock compte les articles où quantite <= quantite_min.
	CountLowStock(ctx context.Context) (int, error)
	// CountExpiringSoon compte les articles expirant dans [from, to].
	// Les articles déjà expirés (date < from) sont exclus.
	CountExpiringSoon(ctx context.Context, from, to time.Time) (int, error)

	ListLowStock(ctx context.Context, limit int) ([]*entity.Article, error)
	ListExpiringSoon(ctx context.Context, from, to time.Time, limit int) ([]*entity.Article, error)

	// ListArticlesByNom retourne les articles triés par nom (ordre déterministe
	// pour les graphiques; limit <= 0 = sans limite).
	ListArticlesByNom(ctx context.Context, limit int) ([]*entity.Article, error)
	// CountDemandesByStatut agrège les demandes par statut.
	CountDemandesByStatut(ctx context.Context) (map[string]int, error)
}
