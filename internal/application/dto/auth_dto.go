package dto

import "time"

// RegisterRequest entrée pour créer un compte.
type RegisterRequest struct {
	Nom      string `json:"nom"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // optionnel, défaut "user"
}

// LoginRequest entrée pour l'authentification.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse sortie d'un utilisateur (jamais le hash du mot de passe).
type UserResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse sortie de login: token porteur + profil.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
