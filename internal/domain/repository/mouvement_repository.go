package repository

import (
	"context"
	"time"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// MouvementFilter critères de listing des mouvements.
type MouvementFilter struct {
	Type      string // entree, sortie, vide = tous
	From      *time.Time
	To        *time.Time
	Search    string // sur raison / nom article / nom utilisateur
	SortBy    string // created_at, quantite, type
	SortOrder string // asc, desc
	Limit     int
	Offset    int
}

// MouvementRow mouvement enrichi des noms de l'article et de l'utilisateur.
type MouvementRow struct {
	entity.Mouvement
	ArticleNom *string
	UserNom    *string
}

// MouvementRepository définit le port de persistance pour Mouvement.
// Le grand-livre est append-only: pas d'Update ni de Delete.
type MouvementRepository interface {
	Create(ctx context.Context, mouvement *entity.Mouvement) error
	List(ctx context.Context, filter MouvementFilter) ([]*MouvementRow, int, error)
}
