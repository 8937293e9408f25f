package dto

// PageQuery paramètres communs de pagination des listings.
// page >= 1, limit dans [1,100].
type PageQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Search    string `query:"search"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"` // asc, desc
}

// Normalize applique les bornes et les valeurs par défaut.
func (p *PageQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
}

// Offset retourne l'offset SQL correspondant à la page.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages calcule le nombre de pages: ceil(total/limit).
func Pages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corps de confirmation simple.
type MessageResponse struct {
	Message string `json:"message"`
}
