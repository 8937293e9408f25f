package dto

import "time"

// HistoriqueResponse entrée d'historique enrichie du nom de l'acteur.
type HistoriqueResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	CibleType   string    `json:"cible_type"`
	CibleID     string    `json:"cible_id"`
	Description string    `json:"description"`
	UserNom     *string   `json:"user_nom"`
	CreatedAt   time.Time `json:"created_at"`
}
