package mouvement

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction DB avec des repositories
// liés à cette transaction: l'ajustement du stock, l'append du mouvement et
// l'entrée d'historique forment une écriture atomique.
type TxRunner interface {
	RunMouvement(ctx context.Context, fn func(
		articles repository.ArticleRepository,
		mouvements repository.MouvementRepository,
		historique repository.HistoriqueRepository,
	) error) error
}
