package entity

import "time"

// User cuenta que inicia sesión; su ID es la identidad propietaria de todos los recursos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Nombre       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
