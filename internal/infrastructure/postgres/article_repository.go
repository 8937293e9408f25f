package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockify/stockify-api/internal/domain"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/textutil"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// Colonnes triables exposées par l'API de listing.
var articleSortColumns = map[string]string{
	"nom":             "nom",
	"quantite":        "quantite",
	"quantite_min":    "quantite_min",
	"date_expiration": "date_expiration",
	"created_at":      "created_at",
}

// ArticleRepo implémentation de ArticleRepository sur PostgreSQL (pool ou tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nouvel article.
func (r *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	query := `
		INSERT INTO articles (id, nom, description, image, code_qr, quantite, quantite_min, date_expiration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Nom, a.Description, a.Image, a.CodeQR,
		a.Quantite, a.QuantiteMin, a.DateExpiration, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retourne un article par ID, (nil, nil) s'il n'existe pas.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	query := `
		SELECT id, nom, description, image, code_qr, quantite, quantite_min, date_expiration, created_at, updated_at
		FROM articles WHERE id = $1`
	var a entity.Article
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Nom, &a.Description, &a.Image, &a.CodeQR,
		&a.Quantite, &a.QuantiteMin, &a.DateExpiration, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// Update remplace les champs éditables; le code QR n'est jamais touché ici.
func (r *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	query := `
		UPDATE articles
		SET nom = $2, description = $3, image = $4, quantite = $5, quantite_min = $6, date_expiration = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.Nom, a.Description, a.Image, a.Quantite, a.QuantiteMin, a.DateExpiration, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime définitivement un article.
func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List retourne la page filtrée et le total calculé avec le même WHERE, donc
// cohérent avec le filtre de recherche. La recherche est insensible aux
// accents: les deux côtés sont pliés (f_unaccent côté SQL, textutil côté Go).
func (r *ArticleRepo) List(ctx context.Context, f repository.ArticleFilter) ([]*entity.Article, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if f.Search != "" {
		where += fmt.Sprintf(" AND (f_unaccent(nom) ILIKE $%d OR f_unaccent(description) ILIKE $%d)", pos, pos)
		args = append(args, likePattern(textutil.Fold(f.Search)))
		pos++
	}
	if f.LowStock {
		where += " AND quantite <= quantite_min"
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM articles"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := `
		SELECT id, nom, description, image, code_qr, quantite, quantite_min, date_expiration, created_at, updated_at
		FROM articles` + where +
		orderClause(articleSortColumns, f.SortBy, f.SortOrder, "created_at") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Nom, &a.Description, &a.Image, &a.CodeQR,
			&a.Quantite, &a.QuantiteMin, &a.DateExpiration, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

// AjusterQuantite applique un délta positif en une seule instruction.
func (r *ArticleRepo) AjusterQuantite(ctx context.Context, id string, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE articles SET quantite = quantite + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("ajuster quantite: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementerQuantite retire qty en une seule instruction conditionnelle:
// le WHERE re-vérifie quantite >= qty au moment où la ligne est verrouillée,
// donc deux décréments concurrents ne peuvent pas passer le stock sous zéro.
func (r *ArticleRepo) DecrementerQuantite(ctx context.Context, id string, qty int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE articles SET quantite = quantite - $2, updated_at = now()
		 WHERE id = $1 AND quantite >= $2`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("decrementer quantite: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}
	// 0 ligne: distinguer article absent et stock insuffisant
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("verifier article: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientStock
}
