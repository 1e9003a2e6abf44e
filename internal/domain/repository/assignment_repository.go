package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// AssignmentRepository persistencia de la relación personal <-> puesto de trabajo.
type AssignmentRepository interface {
	// ListByPersonnel devuelve las asignaciones con el puesto embebido, ordenadas por nombre de puesto.
	ListByPersonnel(ctx context.Context, ownerID, personalID string) ([]*entity.Assignment, error)
	// Add devuelve domain.ErrDuplicate si el par ya existe.
	Add(ctx context.Context, a *entity.Assignment) error
	Update(ctx context.Context, ownerID, personalID, puestoID string, ch Changes) (int64, error)
	Remove(ctx context.Context, ownerID, personalID, puestoID string) (int64, error)
	// Replace borra todas las asignaciones del personal e inserta set (si no está vacío).
	Replace(ctx context.Context, ownerID, personalID string, set []*entity.Assignment) error
}
