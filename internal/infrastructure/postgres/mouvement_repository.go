package postgres

import (
	"context"
	"fmt"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/textutil"
)

var _ repository.MouvementRepository = (*MouvementRepo)(nil)

var mouvementSortColumns = map[string]string{
	"created_at": "m.created_at",
	"quantite":   "m.quantite",
	"type":       "m.type",
}

// MouvementRepo implémentation de MouvementRepository sur PostgreSQL (pool ou tx).
// Append-only: aucune instruction UPDATE ni DELETE sur mouvements.
type MouvementRepo struct {
	q Querier
}

// NewMouvementRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewMouvementRepository(q Querier) *MouvementRepo {
	return &MouvementRepo{q: q}
}

// Create ajoute un mouvement au grand-livre.
func (r *MouvementRepo) Create(ctx context.Context, m *entity.Mouvement) error {
	query := `
		INSERT INTO mouvements (id, article_id, type, quantite, utilisateur_id, raison, demande_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ArticleID, m.Type, m.Quantite, m.UtilisateurID, m.Raison, m.DemandeID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mouvement: %w", err)
	}
	return nil
}

// List retourne les mouvements enrichis des noms (LEFT JOIN: références
// pendantes tolérées). Recherche et filtres participent au COUNT.
func (r *MouvementRepo) List(ctx context.Context, f repository.MouvementFilter) ([]*repository.MouvementRow, int, error) {
	base := `
		FROM mouvements m
		LEFT JOIN articles a ON a.id = m.article_id
		LEFT JOIN users u ON u.id = m.utilisateur_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Type != "" {
		base += fmt.Sprintf(" AND m.type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.From != nil {
		base += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		base += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	if f.Search != "" {
		base += fmt.Sprintf(
			" AND (f_unaccent(m.raison) ILIKE $%d OR f_unaccent(COALESCE(a.nom, '')) ILIKE $%d OR f_unaccent(COALESCE(u.nom, '')) ILIKE $%d)",
			pos, pos, pos)
		args = append(args, likePattern(textutil.Fold(f.Search)))
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mouvements: %w", err)
	}

	query := `
		SELECT m.id, m.article_id, m.type, m.quantite, m.utilisateur_id, m.raison, m.demande_id, m.created_at,
		       a.nom, u.nom ` + base +
		orderClause(mouvementSortColumns, f.SortBy, f.SortOrder, "m.created_at") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MouvementRow
	for rows.Next() {
		var row repository.MouvementRow
		if err := rows.Scan(&row.ID, &row.ArticleID, &row.Type, &row.Quantite,
			&row.UtilisateurID, &row.Raison, &row.DemandeID, &row.CreatedAt,
			&row.ArticleNom, &row.UserNom); err != nil {
			return nil, 0, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, &row)
	}
	return list, total, rows.Err()
}
