package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo requêtes read-only d'agrégation pour le tableau de bord.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construit l'adaptateur.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

func (r *DashboardRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) CountArticles(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles`)
}

func (r *DashboardRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *DashboardRepo) CountDemandes(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM demandes`)
}

func (r *DashboardRepo) CountLowStock(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles WHERE quantite <= quantite_min`)
}

func (r *DashboardRepo) CountExpiringSoon(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM articles WHERE date_expiration IS NOT NULL AND date_expiration BETWEEN $1 AND $2`,
		from, to)
}

const articleColumns = `id, nom, description, image, code_qr, quantite, quantite_min, date_expiration, created_at, updated_at`

func (r *DashboardRepo) listArticles(ctx context.Context, query string, args ...any) ([]*entity.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Nom, &a.Description, &a.Image, &a.CodeQR,
			&a.Quantite, &a.QuantiteMin, &a.DateExpiration, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("dashboard scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Article, error) {
	return r.listArticles(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE quantite <= quantite_min ORDER BY nom ASC LIMIT $1`,
		limit)
}

func (r *DashboardRepo) ListExpiringSoon(ctx context.Context, from, to time.Time, limit int) ([]*entity.Article, error) {
	return r.listArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		 WHERE date_expiration IS NOT NULL AND date_expiration BETWEEN $1 AND $2
		 ORDER BY date_expiration ASC LIMIT $3`,
		from, to, limit)
}

func (r *DashboardRepo) ListArticlesByNom(ctx context.Context, limit int) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY nom ASC`
	if limit > 0 {
		return r.listArticles(ctx, query+` LIMIT $1`, limit)
	}
	return r.listArticles(ctx, query)
}

func (r *DashboardRepo) CountDemandesByStatut(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT statut, COUNT(*) FROM demandes GROUP BY statut`)
	if err != nil {
		return nil, fmt.Errorf("dashboard demandes par statut: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var statut string
		var n int
		if err := rows.Scan(&statut, &n); err != nil {
			return nil, fmt.Errorf("dashboard scan statut: %w", err)
		}
		counts[statut] = n
	}
	return counts, rows.Err()
}
