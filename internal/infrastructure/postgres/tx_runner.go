package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockify/stockify-api/internal/application/demande"
	"github.com/stockify/stockify-api/internal/application/mouvement"
	"github.com/stockify/stockify-api/internal/domain/repository"
)

// TxRunner implémente demande.TxRunner et mouvement.TxRunner.
var _ demande.TxRunner = (*TxRunner)(nil)
var _ mouvement.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction pour le workflow des demandes, exécute fn avec
// des repos liés à la tx puis Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	demandes repository.DemandeRepository,
	articles repository.ArticleRepository,
	mouvements repository.MouvementRepository,
	historique repository.HistoriqueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewDemandeRepository(tx),
		NewArticleRepository(tx),
		NewMouvementRepository(tx),
		NewHistoriqueRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMouvement démarre une transaction pour la création de mouvements manuels.
func (r *TxRunner) RunMouvement(ctx context.Context, fn func(
	articles repository.ArticleRepository,
	mouvements repository.MouvementRepository,
	historique repository.HistoriqueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewArticleRepository(tx),
		NewMouvementRepository(tx),
		NewHistoriqueRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
