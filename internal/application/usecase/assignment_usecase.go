package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// AssignmentUseCase gestiona los puestos de trabajo asignados a una persona.
type AssignmentUseCase struct {
	repo      repository.AssignmentRepository
	personnel repository.PersonnelRepository
	positions repository.JobPositionRepository
	now       func() time.Time
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(
	repo repository.AssignmentRepository,
	personnel repository.PersonnelRepository,
	positions repository.JobPositionRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo, personnel: personnel, positions: positions, now: time.Now}
}

// List asignaciones de la persona con los datos del puesto.
func (uc *AssignmentUseCase) List(ctx context.Context, ownerID, personalID string) ([]*entity.Assignment, error) {
	if err := uc.requirePersonnel(ctx, ownerID, personalID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByPersonnel(ctx, ownerID, personalID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Assignment{}
	}
	return list, nil
}

// Add asigna un puesto. El par persona/puesto repetido es un conflicto.
func (uc *AssignmentUseCase) Add(ctx context.Context, ownerID, personalID string, in dto.AssignmentRequest) (*entity.Assignment, error) {
	if err := uc.requirePersonnel(ctx, ownerID, personalID); err != nil {
		return nil, err
	}
	a, err := uc.build(ctx, ownerID, personalID, in, "puesto_trabajo_id")
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Add(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.ConflictError{Field: "puesto_trabajo_id", Message: "el puesto ya está asignado a esta persona"}
		}
		return nil, err
	}
	return a, nil
}

// Update cambia fecha o tarifa de una asignación existente.
func (uc *AssignmentUseCase) Update(ctx context.Context, ownerID, personalID, puestoID string, in dto.UpdateAssignmentRequest) ([]*entity.Assignment, error) {
	if err := uc.requirePersonnel(ctx, ownerID, personalID); err != nil {
		return nil, err
	}
	ch := repository.Changes{}
	if in.FechaAsignacion != nil {
		fecha, err := parseDate("fecha_asignacion", *in.FechaAsignacion)
		if err != nil {
			return nil, err
		}
		ch["fecha_asignacion"] = *fecha
	}
	switch {
	case in.ResetTarifa:
		ch["tarifa_dia"] = nil
	case in.TarifaDia != nil:
		ch["tarifa_dia"] = *in.TarifaDia
	}
	if len(ch) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	n, err := uc.repo.Update(ctx, ownerID, personalID, puestoID, ch)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.repo.ListByPersonnel(ctx, ownerID, personalID)
}

// Remove quita un puesto asignado.
func (uc *AssignmentUseCase) Remove(ctx context.Context, ownerID, personalID, puestoID string) error {
	if err := uc.requirePersonnel(ctx, ownerID, personalID); err != nil {
		return err
	}
	n, err := uc.repo.Remove(ctx, ownerID, personalID, puestoID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Replace sustituye el conjunto completo de puestos: borra todo y vuelve a insertar.
// Una lista vacía deja a la persona sin puestos.
func (uc *AssignmentUseCase) Replace(ctx context.Context, ownerID, personalID string, in dto.ReplaceAssignmentsRequest) ([]*entity.Assignment, error) {
	if err := uc.requirePersonnel(ctx, ownerID, personalID); err != nil {
		return nil, err
	}
	set := make([]*entity.Assignment, 0, len(in.PuestosTrabajo))
	seen := make(map[string]bool, len(in.PuestosTrabajo))
	for i, req := range in.PuestosTrabajo {
		field := fmt.Sprintf("puestos_trabajo[%d].puesto_trabajo_id", i)
		id, err := validation.ParseID(req.PuestoTrabajoID)
		if err != nil {
			return nil, domain.NewValidationError(field, "debe ser un identificador válido")
		}
		if seen[id] {
			return nil, domain.NewValidationError(field, "puesto repetido")
		}
		seen[id] = true
		a, err := uc.build(ctx, ownerID, personalID, req, field)
		if err != nil {
			return nil, err
		}
		set = append(set, a)
	}
	if err := uc.repo.Replace(ctx, ownerID, personalID, set); err != nil {
		return nil, err
	}
	return uc.List(ctx, ownerID, personalID)
}

func (uc *AssignmentUseCase) build(ctx context.Context, ownerID, personalID string, in dto.AssignmentRequest, field string) (*entity.Assignment, error) {
	id, err := validation.ParseID(in.PuestoTrabajoID)
	if err != nil {
		return nil, domain.NewValidationError(field, "debe ser un identificador válido")
	}
	puesto, err := uc.positions.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if puesto == nil {
		return nil, domain.NewValidationError(field, "puesto de trabajo no válido")
	}
	now := uc.now()
	fecha := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.FechaAsignacion != "" {
		f, err := parseDate("fecha_asignacion", in.FechaAsignacion)
		if err != nil {
			return nil, err
		}
		if f != nil {
			fecha = *f
		}
	}
	return &entity.Assignment{
		ID:              uuid.New().String(),
		UserID:          ownerID,
		PersonalID:      personalID,
		PuestoTrabajoID: puesto.ID,
		FechaAsignacion: fecha,
		TarifaDia:       in.TarifaDia,
		Puesto:          puesto,
		CreatedAt:       now,
	}, nil
}

func (uc *AssignmentUseCase) requirePersonnel(ctx context.Context, ownerID, personalID string) error {
	p, err := uc.personnel.GetByID(ctx, ownerID, personalID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}
