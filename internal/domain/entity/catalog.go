package entity

import "time"

// Brand marca de productos. Nombre único por usuario.
type Brand struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category categoría de productos. Nombre único por usuario.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
