package entity

import "time"

// Article représente un article de stock.
// Quantite n'est modifiée que par le workflow de demandes (approbation) et par
// la création de mouvements; les deux chemins passent par une mise à jour
// conditionnelle atomique côté stockage.
type Article struct {
	ID             string
	Nom            string
	Description    string
	Image          *string // chemin relatif sous uploads/, nil si aucune image
	CodeQR         *string // payload QR dérivé à la création: ARTICLE:<id>:<nom>
	Quantite       int
	QuantiteMin    int
	DateExpiration *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LowStock indique si l'article est sous son seuil minimum.
func (a *Article) LowStock() bool {
	return a.Quantite <= a.QuantiteMin
}
