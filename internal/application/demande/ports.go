package demande

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction DB, en lui passant des
// repositories liés à cette transaction. Garantit que la bascule de statut, le
// décrément de stock, le mouvement et l'entrée d'historique de l'approbation
// sont visibles tous ensemble ou pas du tout.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		demandes repository.DemandeRepository,
		articles repository.ArticleRepository,
		mouvements repository.MouvementRepository,
		historique repository.HistoriqueRepository,
	) error) error
}
