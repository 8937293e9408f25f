package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockify/stockify-api/internal/application/auth"
	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/domain"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/testutil/memstore"
	"github.com/stockify/stockify-api/pkg/jwt"
)

const testSecret = "secret-de-test-suffisamment-long"

func newFixture(t *testing.T) (*auth.AuthUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	uc := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 30,
		Issuer:     "stockify",
	})
	return uc, store
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nom:      "Bob Martin",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return out
}

func TestRegister_RoleUserParDefaut(t *testing.T) {
	uc, _ := newFixture(t)

	out := register(t, uc, "bob@stockify.io", "motdepasse")
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, "bob@stockify.io", out.Email)
}

func TestRegister_EmailDejaPris(t *testing.T) {
	uc, _ := newFixture(t)
	register(t, uc, "bob@stockify.io", "motdepasse")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nom:      "Autre Bob",
		Email:    "bob@stockify.io",
		Password: "autre",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RoleInconnuRefuse(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nom:      "Bob",
		Email:    "bob@stockify.io",
		Password: "motdepasse",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ChampsObligatoires(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "bob@stockify.io"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_RetourneUnTokenValide(t *testing.T) {
	uc, _ := newFixture(t)
	created := register(t, uc, "bob@stockify.io", "motdepasse")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "bob@stockify.io",
		Password: "motdepasse",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, created.ID, out.User.ID)

	userID, role, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_MotDePasseIncorrect(t *testing.T) {
	uc, _ := newFixture(t)
	register(t, uc, "bob@stockify.io", "motdepasse")

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "bob@stockify.io",
		Password: "mauvais",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInconnuMemeErreur(t *testing.T) {
	uc, _ := newFixture(t)

	// Email inconnu et mot de passe incorrect sont indistinguables
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "personne@stockify.io",
		Password: "peu importe",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_ProfilSansHash(t *testing.T) {
	uc, _ := newFixture(t)
	created := register(t, uc, "bob@stockify.io", "motdepasse")

	out, err := uc.Me(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob Martin", out.Nom)
}

func TestMe_UtilisateurInconnu(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Me(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
