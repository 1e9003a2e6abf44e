package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ResourceSpec describe un recurso CRUD: cómo construir la entidad desde el payload de creación,
// cómo traducir un payload parcial a columnas y, opcionalmente, qué nombre debe ser único por usuario.
type ResourceSpec[E, C, U any] struct {
	// Build construye la entidad validando referencias a otros recursos del mismo usuario.
	Build func(ctx context.Context, ownerID string, in C) (*E, error)
	// Patch devuelve solo las columnas presentes en el payload.
	Patch func(ctx context.Context, ownerID string, in U) (repository.Changes, error)

	// UniqueName y UniqueNamePatch activan la comprobación previa de nombre único.
	UniqueName      func(in C) string
	UniqueNamePatch func(in U) *string
	ConflictMessage string
}

type nameChecker interface {
	NameTaken(ctx context.Context, ownerID, name, excludeID string) (bool, error)
}

// Resource casos de uso CRUD genéricos con filtro obligatorio por propietario.
// La comprobación previa de unicidad solo mejora el mensaje: la restricción única del
// almacenamiento es la garantía real y su violación se traduce al mismo ConflictError.
type Resource[E, C, U any] struct {
	repo  repository.OwnedRepository[E]
	names nameChecker
	spec  ResourceSpec[E, C, U]
	now   func() time.Time
}

// NewResource construye el caso de uso. Si spec.UniqueName no es nil, repo debe implementar NameTaken.
func NewResource[E, C, U any](repo repository.OwnedRepository[E], spec ResourceSpec[E, C, U]) *Resource[E, C, U] {
	r := &Resource[E, C, U]{repo: repo, spec: spec, now: time.Now}
	if spec.UniqueName != nil {
		nc, ok := repo.(nameChecker)
		if !ok {
			panic("usecase: el repositorio no soporta comprobación de nombre único")
		}
		r.names = nc
	}
	return r
}

// List devuelve todas las entidades del usuario (nunca nil).
func (r *Resource[E, C, U]) List(ctx context.Context, ownerID string) ([]*E, error) {
	list, err := r.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*E{}
	}
	return list, nil
}

// Get devuelve ErrNotFound si no existe o es de otro usuario.
func (r *Resource[E, C, U]) Get(ctx context.Context, ownerID, id string) (*E, error) {
	e, err := r.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Create construye, comprueba unicidad y persiste.
func (r *Resource[E, C, U]) Create(ctx context.Context, ownerID string, in C) (*E, error) {
	e, err := r.spec.Build(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}
	if r.names != nil {
		if err := r.checkName(ctx, ownerID, r.spec.UniqueName(in), ""); err != nil {
			return nil, err
		}
	}
	if err := r.repo.Create(ctx, e); err != nil {
		return nil, r.translate(err)
	}
	return e, nil
}

// Update aplica un payload parcial. Un payload sin campos devuelve ErrNothingToUpdate.
func (r *Resource[E, C, U]) Update(ctx context.Context, ownerID, id string, in U) (*E, error) {
	if _, err := r.Get(ctx, ownerID, id); err != nil {
		return nil, err
	}
	ch, err := r.spec.Patch(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}
	if len(ch) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	if r.names != nil && r.spec.UniqueNamePatch != nil {
		if name := r.spec.UniqueNamePatch(in); name != nil {
			if err := r.checkName(ctx, ownerID, *name, id); err != nil {
				return nil, err
			}
		}
	}
	ch["updated_at"] = r.now()
	e, err := r.repo.Update(ctx, ownerID, id, ch)
	if err != nil {
		return nil, r.translate(err)
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Delete devuelve ErrNotFound si no se eliminó ninguna fila.
func (r *Resource[E, C, U]) Delete(ctx context.Context, ownerID, id string) error {
	n, err := r.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Resource[E, C, U]) checkName(ctx context.Context, ownerID, name, excludeID string) error {
	taken, err := r.names.NameTaken(ctx, ownerID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return r.conflict()
	}
	return nil
}

func (r *Resource[E, C, U]) translate(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return r.conflict()
	}
	return err
}

func (r *Resource[E, C, U]) conflict() error {
	msg := r.spec.ConflictMessage
	if msg == "" {
		msg = "ya existe un registro con ese nombre"
	}
	return &domain.ConflictError{Field: "nombre", Message: msg}
}
