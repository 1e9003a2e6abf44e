package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// PersonnelUseCase CRUD de personal. Al borrar una persona se borran sus asignaciones (cascada).
type PersonnelUseCase = Resource[entity.Personnel, dto.CreatePersonnelRequest, dto.UpdatePersonnelRequest]

// NewPersonnelUseCase construye el caso de uso.
func NewPersonnelUseCase(repo repository.PersonnelRepository) *PersonnelUseCase {
	return NewResource(repo, ResourceSpec[entity.Personnel, dto.CreatePersonnelRequest, dto.UpdatePersonnelRequest]{
		Build: func(_ context.Context, ownerID string, in dto.CreatePersonnelRequest) (*entity.Personnel, error) {
			now := time.Now()
			return &entity.Personnel{
				ID:        uuid.New().String(),
				UserID:    ownerID,
				Nombre:    validation.Clean(in.Nombre),
				Apellidos: validation.Optional(in.Apellidos),
				Email:     validation.Optional(in.Email),
				Telefono:  validation.Optional(in.Telefono),
				DNI:       validation.Optional(in.DNI),
				Notas:     validation.Optional(in.Notas),
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
		Patch: func(_ context.Context, _ string, in dto.UpdatePersonnelRequest) (repository.Changes, error) {
			ch := repository.Changes{}
			setRequired(ch, "nombre", in.Nombre)
			setOptional(ch, "apellidos", in.Apellidos)
			setOptional(ch, "email", in.Email)
			setOptional(ch, "telefono", in.Telefono)
			setOptional(ch, "dni", in.DNI)
			setOptional(ch, "notas", in.Notas)
			return ch, nil
		},
	})
}
