package dto

import "time"

// CreateArticleRequest entrée pour créer un article (formulaire multipart,
// l'image éventuelle est traitée par le handler).
type CreateArticleRequest struct {
	Nom            string
	Description    string
	Quantite       int
	QuantiteMin    int
	DateExpiration *time.Time
	Image          *string // chemin relatif déjà persisté par le handler
}

// UpdateArticleRequest entrée pour mettre à jour un article: remplacement
// complet des champs éditables (le code QR n'est jamais re-dérivé).
type UpdateArticleRequest struct {
	Nom            string
	Description    string
	Quantite       int
	QuantiteMin    int
	DateExpiration *time.Time
	Image          *string // nil = conserver l'image existante
}

// ArticleListQuery paramètres du listing d'articles.
type ArticleListQuery struct {
	PageQuery
	LowStock bool `query:"low_stock"`
}

// ArticleResponse sortie d'un article.
type ArticleResponse struct {
	ID             string     `json:"id"`
	Nom            string     `json:"nom"`
	Description    string     `json:"description"`
	Image          *string    `json:"image"`
	CodeQR         *string    `json:"code_qr"`
	Quantite       int        `json:"quantite"`
	QuantiteMin    int        `json:"quantite_min"`
	DateExpiration *time.Time `json:"date_expiration"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ArticleListResponse liste paginée d'articles.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Pages int               `json:"pages"`
}
