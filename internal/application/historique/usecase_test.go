package historique_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/application/historique"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/testutil/memstore"
)

func newFixture(t *testing.T) (*historique.HistoriqueUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedUser(&entity.User{ID: "admin-1", Nom: "Alice Admin", Email: "alice@stockify.io", Role: entity.RoleAdmin})
	store.SeedUser(&entity.User{ID: "user-1", Nom: "Bob Martin", Email: "bob@stockify.io", Role: entity.RoleUser})
	return historique.NewHistoriqueUseCase(store.Historique()), store
}

func seedAction(store *memstore.Store, id, userID string, at time.Time) {
	_ = store.Historique().Create(context.Background(), &entity.HistoriqueAction{
		ID:          id,
		UserID:      userID,
		Action:      entity.ActionCreate,
		CibleType:   "Article",
		CibleID:     "a1",
		Description: "Créé l'article Vis",
		CreatedAt:   at,
	})
}

func TestList_UtilisateurNeVoitQueSesActions(t *testing.T) {
	uc, store := newFixture(t)
	now := time.Now()
	seedAction(store, "h1", "user-1", now)
	seedAction(store, "h2", "admin-1", now.Add(time.Second))

	out, err := uc.List(context.Background(), "user-1", entity.RoleUser)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "h1", out[0].ID)
	require.NotNil(t, out[0].UserNom)
	assert.Equal(t, "Bob Martin", *out[0].UserNom)
}

func TestList_AdminVoitTout_PlusRecentesDAbord(t *testing.T) {
	uc, store := newFixture(t)
	now := time.Now()
	seedAction(store, "ancienne", "user-1", now.Add(-time.Hour))
	seedAction(store, "recente", "admin-1", now)

	out, err := uc.List(context.Background(), "admin-1", entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "recente", out[0].ID)
	assert.Equal(t, "ancienne", out[1].ID)
}

func TestList_PlafonneA100Entrees(t *testing.T) {
	uc, store := newFixture(t)
	now := time.Now()
	for i := 0; i < 120; i++ {
		seedAction(store, fmt.Sprintf("h%03d", i), "admin-1", now.Add(time.Duration(i)*time.Second))
	}

	out, err := uc.List(context.Background(), "admin-1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, out, 100)
	// La plus récente en tête, la 20e plus ancienne absente
	assert.Equal(t, "h119", out[0].ID)
}
