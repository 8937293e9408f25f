package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern_EchappeLesMetacaracteres(t *testing.T) {
	// Un terme contenant % ou _ doit être cherché littéralement, pas comme
	// un joker LIKE.
	assert.Equal(t, "%marteau%", likePattern("marteau"))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%vis\_m4%`, likePattern("vis_m4"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
	assert.Equal(t, "%%", likePattern(""))
}

func TestOrderClause_WhitelistEtDirection(t *testing.T) {
	allowed := map[string]string{"nom": "nom", "created_at": "created_at"}

	assert.Equal(t, " ORDER BY nom ASC", orderClause(allowed, "nom", "asc", "created_at"))
	assert.Equal(t, " ORDER BY nom DESC", orderClause(allowed, "nom", "desc", "created_at"))
	// Colonne hors whitelist ou direction invalide: retombe sur le défaut.
	assert.Equal(t, " ORDER BY created_at DESC", orderClause(allowed, "id; DROP TABLE", "", "created_at"))
	assert.Equal(t, " ORDER BY created_at DESC", orderClause(allowed, "", "sideways", "created_at"))
}
