package article_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/application/article"
	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/domain"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/testutil/memstore"
)

const adminID = "admin-1"

func newFixture(t *testing.T) (*article.ArticleUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedUser(&entity.User{ID: adminID, Nom: "Alice Admin", Email: "alice@stockify.io", Role: entity.RoleAdmin})
	return article.NewArticleUseCase(store.Articles(), store.Historique()), store
}

func TestCreate_DeriveLePayloadQR(t *testing.T) {
	uc, store := newFixture(t)

	out, err := uc.Create(context.Background(), adminID, dto.CreateArticleRequest{
		Nom:         "Marteau",
		Description: "Marteau de charpentier",
		Quantite:    12,
		QuantiteMin: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, out.CodeQR)
	assert.Equal(t, fmt.Sprintf("ARTICLE:%s:Marteau", out.ID), *out.CodeQR)

	historique := store.HistoriqueList()
	require.Len(t, historique, 1)
	assert.Equal(t, entity.ActionCreate, historique[0].Action)
	assert.Equal(t, "Article", historique[0].CibleType)
}

func TestCreate_NomObligatoire(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(context.Background(), adminID, dto.CreateArticleRequest{Nom: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_QuantiteNegativeRefusee(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(context.Background(), adminID, dto.CreateArticleRequest{Nom: "Clé", Quantite: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_Introuvable(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.GetByID(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ConserveQREtImage(t *testing.T) {
	uc, _ := newFixture(t)

	created, err := uc.Create(context.Background(), adminID, dto.CreateArticleRequest{
		Nom:      "Scie",
		Quantite: 4,
		Image:    ptr("uploads/scie.png"),
	})
	require.NoError(t, err)
	qrAvant := *created.CodeQR

	// Renommage sans nouvelle image: QR et image d'origine inchangés
	updated, err := uc.Update(context.Background(), adminID, created.ID, dto.UpdateArticleRequest{
		Nom:         "Scie sauteuse",
		Quantite:    4,
		QuantiteMin: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CodeQR)
	assert.Equal(t, qrAvant, *updated.CodeQR)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "uploads/scie.png", *updated.Image)
}

func TestUpdate_RemplaceLImageSiFournie(t *testing.T) {
	uc, _ := newFixture(t)

	created, err := uc.Create(context.Background(), adminID, dto.CreateArticleRequest{Nom: "Pince", Quantite: 2})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), adminID, created.ID, dto.UpdateArticleRequest{
		Nom:      "Pince",
		Quantite: 2,
		Image:    ptr("uploads/pince.png"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "uploads/pince.png", *updated.Image)
}

func TestUpdate_Introuvable(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Update(context.Background(), adminID, "inconnu", dto.UpdateArticleRequest{Nom: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_TraceLHistorique(t *testing.T) {
	uc, store := newFixture(t)

	created, err := uc.Create(context.Background(), adminID, dto.CreateArticleRequest{Nom: "Niveau", Quantite: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), adminID, created.ID))
	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	historique := store.HistoriqueList()
	require.Len(t, historique, 2) // création puis suppression
	actions := []string{historique[0].Action, historique[1].Action}
	assert.Contains(t, actions, entity.ActionDelete)
}

func TestDelete_Introuvable(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.Delete(context.Background(), adminID, "inconnu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_RechercheInsensibleAuxAccents(t *testing.T) {
	uc, store := newFixture(t)
	store.SeedArticle(&entity.Article{ID: "a1", Nom: "Écran 27 pouces", Quantite: 5, QuantiteMin: 1})
	store.SeedArticle(&entity.Article{ID: "a2", Nom: "Clavier", Quantite: 5, QuantiteMin: 1})

	out, err := uc.List(context.Background(), dto.ArticleListQuery{
		PageQuery: dto.PageQuery{Search: "ecran"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Écran 27 pouces", out.Items[0].Nom)
}

func TestList_FiltreStockFaible(t *testing.T) {
	uc, store := newFixture(t)
	store.SeedArticle(&entity.Article{ID: "a1", Nom: "Vis", Quantite: 2, QuantiteMin: 5})
	store.SeedArticle(&entity.Article{ID: "a2", Nom: "Boulon", Quantite: 50, QuantiteMin: 5})

	out, err := uc.List(context.Background(), dto.ArticleListQuery{LowStock: true})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Vis", out.Items[0].Nom)
}

func TestList_TriParDefautPlusRecentsDAbord(t *testing.T) {
	uc, store := newFixture(t)
	store.SeedArticle(&entity.Article{ID: "a1", Nom: "Ancien", Quantite: 1, CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)})
	store.SeedArticle(&entity.Article{ID: "a2", Nom: "Récent", Quantite: 1, CreatedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)})

	out, err := uc.List(context.Background(), dto.ArticleListQuery{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Récent", out.Items[0].Nom)
	assert.Equal(t, "Ancien", out.Items[1].Nom)
}

func TestList_PaginationEtTotalCoherents(t *testing.T) {
	uc, store := newFixture(t)
	for i := 0; i < 25; i++ {
		store.SeedArticle(&entity.Article{ID: fmt.Sprintf("a%02d", i), Nom: fmt.Sprintf("Article %02d", i), Quantite: 1})
	}

	out, err := uc.List(context.Background(), dto.ArticleListQuery{
		PageQuery: dto.PageQuery{Page: 2, Limit: 10, SortBy: "nom", SortOrder: "asc"},
	})
	require.NoError(t, err)
	assert.Equal(t, 25, out.Total)
	assert.Equal(t, 3, out.Pages)
	require.Len(t, out.Items, 10)
	assert.Equal(t, "Article 10", out.Items[0].Nom)
}

func ptr(s string) *string { return &s }
