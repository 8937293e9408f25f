package repository

import (
	"context"

	"github.com/stockify/stockify-api/internal/domain/entity"
)

// UserRepository définit le port de persistance pour User (DIP).
// Les lectures retournent (nil, nil) si l'utilisateur n'existe pas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
