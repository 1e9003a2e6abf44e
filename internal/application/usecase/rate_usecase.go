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

// JobPositionUseCase CRUD de puestos de trabajo (nombre único por usuario).
type JobPositionUseCase = Resource[entity.JobPosition, dto.RateRequest, dto.UpdateRateRequest]

// ServiceUseCase CRUD de servicios (nombre único por usuario).
type ServiceUseCase = Resource[entity.Service, dto.RateRequest, dto.UpdateRateRequest]

// NewJobPositionUseCase construye el caso de uso.
func NewJobPositionUseCase(repo repository.JobPositionRepository) *JobPositionUseCase {
	return NewResource(repo, ResourceSpec[entity.JobPosition, dto.RateRequest, dto.UpdateRateRequest]{
		Build: func(_ context.Context, ownerID string, in dto.RateRequest) (*entity.JobPosition, error) {
			now := time.Now()
			return &entity.JobPosition{
				ID:          uuid.New().String(),
				UserID:      ownerID,
				Nombre:      validation.Clean(in.Nombre),
				Descripcion: validation.Optional(in.Descripcion),
				TarifaDia:   in.TarifaDia,
				CreatedAt:   now,
				UpdatedAt:   now,
			}, nil
		},
		Patch:           patchRate,
		UniqueName:      rateNameOf,
		UniqueNamePatch: rateNamePatchOf,
		ConflictMessage: "ya existe un puesto de trabajo con ese nombre",
	})
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return NewResource(repo, ResourceSpec[entity.Service, dto.RateRequest, dto.UpdateRateRequest]{
		Build: func(_ context.Context, ownerID string, in dto.RateRequest) (*entity.Service, error) {
			now := time.Now()
			return &entity.Service{
				ID:          uuid.New().String(),
				UserID:      ownerID,
				Nombre:      validation.Clean(in.Nombre),
				Descripcion: validation.Optional(in.Descripcion),
				TarifaDia:   in.TarifaDia,
				CreatedAt:   now,
				UpdatedAt:   now,
			}, nil
		},
		Patch:           patchRate,
		UniqueName:      rateNameOf,
		UniqueNamePatch: rateNamePatchOf,
		ConflictMessage: "ya existe un servicio con ese nombre",
	})
}

func patchRate(_ context.Context, _ string, in dto.UpdateRateRequest) (repository.Changes, error) {
	ch := repository.Changes{}
	setRequired(ch, "nombre", in.Nombre)
	setOptional(ch, "descripcion", in.Descripcion)
	setDecimal(ch, "tarifa_dia", in.TarifaDia)
	return ch, nil
}

func rateNameOf(in dto.RateRequest) string { return validation.Clean(in.Nombre) }

func rateNamePatchOf(in dto.UpdateRateRequest) *string { return cleanPtr(in.Nombre) }
