package dto

import "time"

// CreateDemandeRequest entrée pour créer une demande de retrait.
type CreateDemandeRequest struct {
	ArticleID        string `json:"article_id"`
	QuantiteDemandee int    `json:"quantite_demandee"`
}

// DemandeListQuery paramètres du listing de demandes.
type DemandeListQuery struct {
	PageQuery
	Statut string `query:"statut"`
}

// DemandeResponse sortie d'une demande, enrichie des noms du demandeur et de
// l'article (null si l'article référencé a été supprimé).
type DemandeResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ArticleID        string    `json:"article_id"`
	QuantiteDemandee int       `json:"quantite_demandee"`
	Statut           string    `json:"statut"`
	DateDemande      time.Time `json:"date_demande"`
	UserNom          *string   `json:"user_nom"`
	ArticleNom       *string   `json:"article_nom"`
}

// DemandeListResponse liste paginée de demandes.
type DemandeListResponse struct {
	Items []DemandeResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Pages int               `json:"pages"`
}
