package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
