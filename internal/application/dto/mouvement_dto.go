package dto

import "time"

// CreateMouvementRequest entrée pour enregistrer un mouvement manuel (admin).
type CreateMouvementRequest struct {
	ArticleID string `json:"article_id"`
	Type      string `json:"type"` // entree, sortie
	Quantite  int    `json:"quantite"`
	Raison    string `json:"raison"`
}

// MouvementListQuery paramètres du listing de mouvements.
type MouvementListQuery struct {
	PageQuery
	Type string `query:"type"`
	From string `query:"from"` // RFC 3339 ou YYYY-MM-DD
	To   string `query:"to"`
}

// MouvementResponse sortie d'un mouvement, enrichie des noms.
type MouvementResponse struct {
	ID            string    `json:"id"`
	ArticleID     string    `json:"article_id"`
	Type          string    `json:"type"`
	Quantite      int       `json:"quantite"`
	UtilisateurID string    `json:"utilisateur_id"`
	Raison        string    `json:"raison"`
	DemandeID     *string   `json:"demande_id"`
	ArticleNom    *string   `json:"article_nom"`
	UserNom       *string   `json:"user_nom"`
	CreatedAt     time.Time `json:"created_at"`
}

// MouvementListResponse liste paginée de mouvements.
type MouvementListResponse struct {
	Items []MouvementResponse `json:"items"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Pages int                 `json:"pages"`
}
