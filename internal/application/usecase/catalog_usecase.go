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

// BrandUseCase CRUD de marcas (nombre único por usuario).
type BrandUseCase = Resource[entity.Brand, dto.NameRequest, dto.UpdateNameRequest]

// CategoryUseCase CRUD de categorías (nombre único por usuario).
type CategoryUseCase = Resource[entity.Category, dto.NameRequest, dto.UpdateNameRequest]

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return NewResource(repo, ResourceSpec[entity.Brand, dto.NameRequest, dto.UpdateNameRequest]{
		Build: func(_ context.Context, ownerID string, in dto.NameRequest) (*entity.Brand, error) {
			now := time.Now()
			return &entity.Brand{
				ID:        uuid.New().String(),
				UserID:    ownerID,
				Nombre:    validation.Clean(in.Nombre),
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
		Patch:           patchName,
		UniqueName:      nameOf,
		UniqueNamePatch: namePatchOf,
		ConflictMessage: "ya existe una marca con ese nombre",
	})
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return NewResource(repo, ResourceSpec[entity.Category, dto.NameRequest, dto.UpdateNameRequest]{
		Build: func(_ context.Context, ownerID string, in dto.NameRequest) (*entity.Category, error) {
			now := time.Now()
			return &entity.Category{
				ID:        uuid.New().String(),
				UserID:    ownerID,
				Nombre:    validation.Clean(in.Nombre),
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
		Patch:           patchName,
		UniqueName:      nameOf,
		UniqueNamePatch: namePatchOf,
		ConflictMessage: "ya existe una categoría con ese nombre",
	})
}

func patchName(_ context.Context, _ string, in dto.UpdateNameRequest) (repository.Changes, error) {
	ch := repository.Changes{}
	setRequired(ch, "nombre", in.Nombre)
	return ch, nil
}

func nameOf(in dto.NameRequest) string { return validation.Clean(in.Nombre) }

func namePatchOf(in dto.UpdateNameRequest) *string { return cleanPtr(in.Nombre) }

func cleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := validation.Clean(*s)
	return &v
}
