package repository

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// ArticleFilter critères de listing des articles.
type ArticleFilter struct {
	Search    string // sous-chaîne sur nom/description, insensible casse et accents
	LowStock  bool   // seulement quantite <= quantite_min
	SortBy    string // nom, quantite, quantite_min, date_expiration, created_at
	SortOrder string // asc, desc
	Limit     int
	Offset    int
}

// ArticleRepository définit le port de persistance pour Article (DIP).
//
// AjusterQuantite et DecrementerQuantite sont des mises à jour conditionnelles
// atomiques: c'est le seul chemin autorisé pour muter Quantite, afin de tenir
// l'invariant stock/grand-livre sous concurrence.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, int, error)

	// AjusterQuantite applique un délta positif (entrée) en une seule instruction.
	AjusterQuantite(ctx context.Context, id string, delta int) error
	// DecrementerQuantite retire qty seulement si quantite >= qty.
	// Retourne domain.ErrInsufficientStock si le stock est insuffisant,
	// domain.ErrNotFound si l'article n'existe pas.
	DecrementerQuantite(ctx context.Context, id string, qty int) error
}
