package mouvement_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/application/mouvement"
	"github.com/stockify/stockify-api/internal/domain"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/testutil/memstore"
)

const (
	adminID   = "admin-1"
	articleID = "art-1"
)

func newFixture(t *testing.T) (*mouvement.MouvementUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedUser(&entity.User{ID: adminID, Nom: "Alice Admin", Email: "alice@stockify.io", Role: entity.RoleAdmin})
	store.SeedArticle(&entity.Article{ID: articleID, Nom: "Perceuse", Quantite: 5, QuantiteMin: 1})
	uc := mouvement.NewMouvementUseCase(&memstore.TxRunner{S: store}, store.Mouvements())
	return uc, store
}

func TestCreate_EntreeAugmenteLeStock(t *testing.T) {
	uc, store := newFixture(t)

	err := uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID,
		Type:      entity.MouvementEntree,
		Quantite:  7,
		Raison:    "Réapprovisionnement fournisseur",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, store.ArticleQuantite(articleID))

	mouvements := store.MouvementsList()
	require.Len(t, mouvements, 1)
	assert.Equal(t, entity.MouvementEntree, mouvements[0].Type)
	assert.Nil(t, mouvements[0].DemandeID)

	historique := store.HistoriqueList()
	require.Len(t, historique, 1)
	assert.Equal(t, entity.ActionCreate, historique[0].Action)
	assert.Equal(t, "Mouvement entree de 7 Perceuse", historique[0].Description)
}

func TestCreate_SortieDiminueLeStock(t *testing.T) {
	uc, store := newFixture(t)

	err := uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID,
		Type:      entity.MouvementSortie,
		Quantite:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, store.ArticleQuantite(articleID))
}

func TestCreate_SortieStockInsuffisant(t *testing.T) {
	uc, store := newFixture(t)

	err := uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID,
		Type:      entity.MouvementSortie,
		Quantite:  6,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rien n'est écrit: ni stock, ni grand-livre, ni historique
	assert.Equal(t, 5, store.ArticleQuantite(articleID))
	assert.Empty(t, store.MouvementsList())
	assert.Empty(t, store.HistoriqueList())
}

func TestCreate_ArticleIntrouvable(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: "inconnu",
		Type:      entity.MouvementEntree,
		Quantite:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_TypeInconnu(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID,
		Type:      "transfert",
		Quantite:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_QuantiteNonPositive(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID,
		Type:      entity.MouvementEntree,
		Quantite:  -2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FiltreParType(t *testing.T) {
	uc, _ := newFixture(t)
	require.NoError(t, uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID, Type: entity.MouvementEntree, Quantite: 3,
	}))
	require.NoError(t, uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID, Type: entity.MouvementSortie, Quantite: 2,
	}))

	out, err := uc.List(context.Background(), dto.MouvementListQuery{Type: entity.MouvementSortie})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, entity.MouvementSortie, out.Items[0].Type)
	require.NotNil(t, out.Items[0].ArticleNom)
	assert.Equal(t, "Perceuse", *out.Items[0].ArticleNom)
}

func TestList_LeGrandLivreSurvitALaSuppressionDeLArticle(t *testing.T) {
	uc, store := newFixture(t)
	require.NoError(t, uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID, Type: entity.MouvementEntree, Quantite: 3,
	}))

	// La suppression de l'article laisse le mouvement en place, avec une
	// référence pendante que le listing rend par article_nom null.
	require.NoError(t, store.Articles().Delete(context.Background(), articleID))

	out, err := uc.List(context.Background(), dto.MouvementListQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, articleID, out.Items[0].ArticleID)
	assert.Nil(t, out.Items[0].ArticleNom)
}

func TestList_TypeInvalide(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.List(context.Background(), dto.MouvementListQuery{Type: "transfert"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_DateInvalide(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.List(context.Background(), dto.MouvementListQuery{From: "hier"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FenetreDeDates(t *testing.T) {
	uc, _ := newFixture(t)
	require.NoError(t, uc.Create(context.Background(), adminID, dto.CreateMouvementRequest{
		ArticleID: articleID, Type: entity.MouvementEntree, Quantite: 1,
	}))

	today := time.Now().Format("2006-01-02")
	out, err := uc.List(context.Background(), dto.MouvementListQuery{From: today})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}
