package entity

import "time"

// Statuts d'une demande. Transition à sens unique:
// pending -> approved OU pending -> rejected, rien d'autre.
const (
	DemandeStatusPending  = "pending"
	DemandeStatusApproved = "approved"
	DemandeStatusRejected = "rejected"
)

// Demande représente une demande de retrait de stock faite par un utilisateur,
// soumise à l'approbation d'un admin.
type Demande struct {
	ID               string
	UserID           string
	ArticleID        string
	QuantiteDemandee int
	Statut           string
	DateDemande      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidDemandeStatus vérifie qu'un statut appartient à l'énumération.
func ValidDemandeStatus(s string) bool {
	switch s {
	case DemandeStatusPending, DemandeStatusApproved, DemandeStatusRejected:
		return true
	}
	return false
}
