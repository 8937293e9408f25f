package entity

import "time"

// Types de mouvement de stock.
const (
	MouvementEntree = "entree" // entrée de stock
	MouvementSortie = "sortie" // sortie de stock
)

// Mouvement représente un changement de stock immuable (jamais modifié ni supprimé).
// DemandeID est renseigné quand le mouvement provient de l'approbation d'une demande.
type Mouvement struct {
	ID            string
	ArticleID     string
	Type          string
	Quantite      int
	UtilisateurID string
	Raison        string
	DemandeID     *string
	CreatedAt     time.Time
}

// ValidMouvementType vérifie qu'un type appartient à l'énumération.
func ValidMouvementType(t string) bool {
	return t == MouvementEntree || t == MouvementSortie
}
