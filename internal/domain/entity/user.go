package entity

import "time"

// Rôles valides pour User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User représente un utilisateur du système.
type User struct {
	ID           string
	Nom          string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	Role         string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
