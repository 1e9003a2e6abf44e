package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. La categoría es obligatoria y la marca opcional;
// ambas deben pertenecer al mismo usuario. Stock es el número de equipos del producto.
type ProductUseCase = Resource[entity.Product, dto.CreateProductRequest, dto.UpdateProductRequest]

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
) *ProductUseCase {
	refs := productRefs{categories: categories, brands: brands}
	return NewResource(repo, ResourceSpec[entity.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Build: func(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*entity.Product, error) {
			if err := refs.checkCategory(ctx, ownerID, in.CategoriaID); err != nil {
				return nil, err
			}
			marcaID := validation.Optional(in.MarcaID)
			if marcaID != nil {
				if err := refs.checkBrand(ctx, ownerID, *marcaID); err != nil {
					return nil, err
				}
			}
			now := time.Now()
			return &entity.Product{
				ID:                     uuid.New().String(),
				UserID:                 ownerID,
				Nombre:                 validation.Clean(in.Nombre),
				Descripcion:            validation.Optional(in.Descripcion),
				PrecioBase:             in.PrecioBase,
				PrecioAlquilerDia:      in.PrecioAlquilerDia,
				PrecioCompraReferencia: in.PrecioCompraReferencia,
				CategoriaID:            in.CategoriaID,
				MarcaID:                marcaID,
				CreatedAt:              now,
				UpdatedAt:              now,
			}, nil
		},
		Patch: func(ctx context.Context, ownerID string, in dto.UpdateProductRequest) (repository.Changes, error) {
			ch := repository.Changes{}
			setRequired(ch, "nombre", in.Nombre)
			setOptional(ch, "descripcion", in.Descripcion)
			setDecimal(ch, "precio_base", in.PrecioBase)
			setDecimal(ch, "precio_alquiler_dia", in.PrecioAlquilerDia)
			setDecimal(ch, "precio_compra_referencia", in.PrecioCompraReferencia)
			if in.CategoriaID != nil {
				if err := refs.checkCategory(ctx, ownerID, *in.CategoriaID); err != nil {
					return nil, err
				}
				ch["categoria_id"] = *in.CategoriaID
			}
			if in.MarcaID != nil {
				marcaID := validation.OptionalPtr(in.MarcaID)
				if marcaID != nil {
					if err := refs.checkBrand(ctx, ownerID, *marcaID); err != nil {
						return nil, err
					}
				}
				ch["marca_id"] = marcaID
			}
			return ch, nil
		},
		UniqueName:      func(in dto.CreateProductRequest) string { return validation.Clean(in.Nombre) },
		UniqueNamePatch: func(in dto.UpdateProductRequest) *string { return cleanPtr(in.Nombre) },
		ConflictMessage: "ya existe un producto con ese nombre",
	})
}

type productRefs struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

// checkCategory una categoría de otro usuario se rechaza igual que una inexistente (400).
func (r productRefs) checkCategory(ctx context.Context, ownerID, id string) error {
	c, err := r.categories.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NewValidationError("categoria_id", "categoría no válida")
	}
	return nil
}

func (r productRefs) checkBrand(ctx context.Context, ownerID, id string) error {
	b, err := r.brands.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.NewValidationError("marca_id", "marca no válida")
	}
	return nil
}
