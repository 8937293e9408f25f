package postgres

import (
	"context"
	"fmt"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
)

var _ repository.HistoriqueRepository = (*HistoriqueRepo)(nil)

// HistoriqueRepo implémentation de HistoriqueRepository sur PostgreSQL (pool ou tx).
type HistoriqueRepo struct {
	q Querier
}

// NewHistoriqueRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewHistoriqueRepository(q Querier) *HistoriqueRepo {
	return &HistoriqueRepo{q: q}
}

// Create ajoute une entrée d'audit.
func (r *HistoriqueRepo) Create(ctx context.Context, h *entity.HistoriqueAction) error {
	query := `
		INSERT INTO historique_actions (id, user_id, action, cible_type, cible_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.UserID, h.Action, h.CibleType, h.CibleID, h.Description, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historique: %w", err)
	}
	return nil
}

// List retourne les entrées les plus récentes d'abord, enrichies du nom de
// l'acteur. userID vide = toutes les entrées.
func (r *HistoriqueRepo) List(ctx context.Context, userID string, limit int) ([]*repository.HistoriqueRow, error) {
	query := `
		SELECT h.id, h.user_id, h.action, h.cible_type, h.cible_id, h.description, h.created_at, u.nom
		FROM historique_actions h
		LEFT JOIN users u ON u.id = h.user_id`
	args := []any{}
	pos := 1
	if userID != "" {
		query += fmt.Sprintf(" WHERE h.user_id = $%d", pos)
		args = append(args, userID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY h.created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list historique: %w", err)
	}
	defer rows.Close()
	var list []*repository.HistoriqueRow
	for rows.Next() {
		var row repository.HistoriqueRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.Action, &row.CibleType,
			&row.CibleID, &row.Description, &row.CreatedAt, &row.UserNom); err != nil {
			return nil, fmt.Errorf("scan historique: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
