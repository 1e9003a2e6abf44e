package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// Changes columnas a escribir en una actualización parcial. Un valor nil se persiste como NULL;
// las columnas ausentes no se tocan.
type Changes map[string]any

// OwnedRepository puerto de persistencia para entidades de un único propietario.
// Todas las operaciones filtran por ownerID además del id: una fila de otro usuario
// es indistinguible de una inexistente.
type OwnedRepository[E any] interface {
	// ListByOwner devuelve todas las entidades del usuario ordenadas por nombre.
	ListByOwner(ctx context.Context, ownerID string) ([]*E, error)
	// GetByID devuelve (nil, nil) si no existe o pertenece a otro usuario.
	GetByID(ctx context.Context, ownerID, id string) (*E, error)
	// Create devuelve domain.ErrDuplicate si viola una restricción única.
	Create(ctx context.Context, e *E) error
	// Update escribe solo las columnas de ch; devuelve (nil, nil) si ninguna fila coincide.
	Update(ctx context.Context, ownerID, id string, ch Changes) (*E, error)
	// Delete devuelve el número de filas eliminadas.
	Delete(ctx context.Context, ownerID, id string) (int64, error)
}

// NamedRepository añade la consulta previa de unicidad de nombre por usuario.
type NamedRepository[E any] interface {
	OwnedRepository[E]
	// NameTaken indica si otro registro del usuario (distinto de excludeID) ya usa ese nombre exacto.
	NameTaken(ctx context.Context, ownerID, name, excludeID string) (bool, error)
}

type (
	ClientRepository      = OwnedRepository[entity.Client]
	PersonnelRepository   = OwnedRepository[entity.Personnel]
	ProviderRepository    = OwnedRepository[entity.Provider]
	BrandRepository       = NamedRepository[entity.Brand]
	CategoryRepository    = NamedRepository[entity.Category]
	ProductRepository     = NamedRepository[entity.Product]
	JobPositionRepository = NamedRepository[entity.JobPosition]
	ServiceRepository     = NamedRepository[entity.Service]
)
