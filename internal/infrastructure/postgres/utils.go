package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation vérifie si une erreur est une violation de contrainte unique (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// likeEscaper protège les métacaractères LIKE pour que la saisie de
// l'utilisateur soit cherchée littéralement ('\' est le caractère
// d'échappement par défaut de PostgreSQL).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern construit le motif ILIKE %needle% à partir d'un terme de
// recherche brut.
func likePattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

// orderClause construit un ORDER BY sûr: la colonne doit appartenir à la
// whitelist (clé = nom exposé par l'API, valeur = expression SQL), sinon le
// tri par défaut est utilisé. La direction est bornée à ASC/DESC.
func orderClause(allowed map[string]string, sortBy, sortOrder, def string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = def
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}
