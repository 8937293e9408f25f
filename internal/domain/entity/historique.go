package entity

import "time"

// Verbes d'action pour l'historique.
const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

// HistoriqueAction est une entrée d'audit immuable: qui a fait quoi sur quelle entité.
// Écrite en effet de bord par toute opération mutante du système.
type HistoriqueAction struct {
	ID          string
	UserID      string
	Action      string
	CibleType   string // Article, Demande, Mouvement, User
	CibleID     string
	Description string
	CreatedAt   time.Time
}
