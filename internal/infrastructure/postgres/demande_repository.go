package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/textutil"
)

var _ repository.DemandeRepository = (*DemandeRepo)(nil)

var demandeSortColumns = map[string]string{
	"date_demande":      "d.date_demande",
	"statut":            "d.statut",
	"quantite_demandee": "d.quantite_demandee",
	"created_at":        "d.created_at",
}

// DemandeRepo implémentation de DemandeRepository sur PostgreSQL (pool ou tx).
type DemandeRepo struct {
	q Querier
}

// NewDemandeRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewDemandeRepository(q Querier) *DemandeRepo {
	return &DemandeRepo{q: q}
}

// Create persiste une demande.
func (r *DemandeRepo) Create(ctx context.Context, d *entity.Demande) error {
	query := `
		INSERT INTO demandes (id, user_id, article_id, quantite_demandee, statut, date_demande, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.UserID, d.ArticleID, d.QuantiteDemandee, d.Statut, d.DateDemande, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert demande: %w", err)
	}
	return nil
}

// GetByID retourne une demande par ID, (nil, nil) si elle n'existe pas.
func (r *DemandeRepo) GetByID(ctx context.Context, id string) (*entity.Demande, error) {
	query := `
		SELECT id, user_id, article_id, quantite_demandee, statut, date_demande, created_at, updated_at
		FROM demandes WHERE id = $1`
	var d entity.Demande
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UserID, &d.ArticleID, &d.QuantiteDemandee, &d.Statut, &d.DateDemande, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get demande: %w", err)
	}
	return &d, nil
}

// List retourne les demandes enrichies des noms (LEFT JOIN: un article
// supprimé donne article_nom NULL, jamais une erreur). La recherche porte sur
// les noms joints et participe au COUNT, donc total/pages restent cohérents.
func (r *DemandeRepo) List(ctx context.Context, f repository.DemandeFilter) ([]*repository.DemandeRow, int, error) {
	base := `
		FROM demandes d
		LEFT JOIN users u ON u.id = d.user_id
		LEFT JOIN articles a ON a.id = d.article_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if f.UserID != "" {
		base += fmt.Sprintf(" AND d.user_id = $%d", pos)
		args = append(args, f.UserID)
		pos++
	}
	if f.Statut != "" {
		base += fmt.Sprintf(" AND d.statut = $%d", pos)
		args = append(args, f.Statut)
		pos++
	}
	if f.Search != "" {
		base += fmt.Sprintf(" AND (f_unaccent(COALESCE(u.nom, '')) ILIKE $%d OR f_unaccent(COALESCE(a.nom, '')) ILIKE $%d)", pos, pos)
		args = append(args, likePattern(textutil.Fold(f.Search)))
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count demandes: %w", err)
	}

	query := `
		SELECT d.id, d.user_id, d.article_id, d.quantite_demandee, d.statut, d.date_demande, d.created_at, d.updated_at,
		       u.nom, a.nom ` + base +
		orderClause(demandeSortColumns, f.SortBy, f.SortOrder, "d.date_demande") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list demandes: %w", err)
	}
	defer rows.Close()
	var list []*repository.DemandeRow
	for rows.Next() {
		var row repository.DemandeRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.ArticleID, &row.QuantiteDemandee,
			&row.Statut, &row.DateDemande, &row.CreatedAt, &row.UpdatedAt,
			&row.UserNom, &row.ArticleNom); err != nil {
			return nil, 0, fmt.Errorf("scan demande: %w", err)
		}
		list = append(list, &row)
	}
	return list, total, rows.Err()
}

// UpdateStatutIfPending bascule le statut seulement si la demande est encore
// pending. Sous READ COMMITTED, un second UPDATE concurrent attend le verrou
// de ligne puis ré-évalue le WHERE: il touche 0 ligne et retourne false.
func (r *DemandeRepo) UpdateStatutIfPending(ctx context.Context, id, statut string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE demandes SET statut = $2, updated_at = now()
		 WHERE id = $1 AND statut = $3`,
		id, statut, entity.DemandeStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("update statut demande: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}
