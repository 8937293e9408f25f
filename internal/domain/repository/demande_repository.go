package repository

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// DemandeFilter critères de listing des demandes.
// UserID vide = toutes les demandes (acteur admin).
type DemandeFilter struct {
	UserID    string
	Statut    string
	Search    string // sur nom du demandeur / nom de l'article (jointure SQL)
	SortBy    string // date_demande, statut, quantite_demandee, created_at
	SortOrder string // asc, desc
	Limit     int
	Offset    int
}

// DemandeRow demande enrichie des noms du demandeur et de l'article.
// Les jointures sont LEFT: un article supprimé laisse ArticleNom nil.
type DemandeRow struct {
	entity.Demande
	UserNom    *string
	ArticleNom *string
}

// DemandeRepository définit le port de persistance pour Demande (DIP).
type DemandeRepository interface {
	Create(ctx context.Context, demande *entity.Demande) error
	GetByID(ctx context.Context, id string) (*entity.Demande, error)
	// List retourne les lignes filtrées et le total correspondant au même
	// filtre (le total est calculé après application de la recherche).
	List(ctx context.Context, filter DemandeFilter) ([]*DemandeRow, int, error)

	// UpdateStatutIfPending bascule le statut en une seule instruction
	// conditionnelle (WHERE statut = 'pending'). Retourne false si la demande
	// n'était plus pending: le second approbateur concurrent observe un conflit.
	UpdateStatutIfPending(ctx context.Context, id, statut string) (bool, error)
}
