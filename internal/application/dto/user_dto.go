package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required,min=8,max=72" normalize:"-"`
	Nombre   string `json:"nombre" validate:"max=200"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required" normalize:"-"`
}

// UserResponse usuario en respuestas (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token de sesión (también enviado como cookie) + usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
