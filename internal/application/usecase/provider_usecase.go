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

// ProviderUseCase CRUD de proveedores.
type ProviderUseCase = Resource[entity.Provider, dto.CreateProviderRequest, dto.UpdateProviderRequest]

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return NewResource(repo, ResourceSpec[entity.Provider, dto.CreateProviderRequest, dto.UpdateProviderRequest]{
		Build: func(_ context.Context, ownerID string, in dto.CreateProviderRequest) (*entity.Provider, error) {
			now := time.Now()
			return &entity.Provider{
				ID:               uuid.New().String(),
				UserID:           ownerID,
				Nombre:           validation.Clean(in.Nombre),
				Tipo:             in.Tipo,
				PersonaContacto:  validation.Optional(in.PersonaContacto),
				NIF:              validation.Optional(in.NIF),
				Direccion:        validation.Optional(in.Direccion),
				CodigoPostal:     validation.Optional(in.CodigoPostal),
				Ciudad:           validation.Optional(in.Ciudad),
				Provincia:        validation.Optional(in.Provincia),
				Pais:             validation.Optional(in.Pais),
				Telefono:         validation.Optional(in.Telefono),
				Email:            validation.Optional(in.Email),
				Web:              validation.Optional(in.Web),
				Intracomunitario: in.Intracomunitario,
				Notas:            validation.Optional(in.Notas),
				CreatedAt:        now,
				UpdatedAt:        now,
			}, nil
		},
		Patch: func(_ context.Context, _ string, in dto.UpdateProviderRequest) (repository.Changes, error) {
			ch := repository.Changes{}
			setRequired(ch, "nombre", in.Nombre)
			setRequired(ch, "tipo", in.Tipo)
			setOptional(ch, "persona_contacto", in.PersonaContacto)
			setOptional(ch, "nif", in.NIF)
			setOptional(ch, "direccion", in.Direccion)
			setOptional(ch, "codigo_postal", in.CodigoPostal)
			setOptional(ch, "ciudad", in.Ciudad)
			setOptional(ch, "provincia", in.Provincia)
			setOptional(ch, "pais", in.Pais)
			setOptional(ch, "telefono", in.Telefono)
			setOptional(ch, "email", in.Email)
			setOptional(ch, "web", in.Web)
			setBool(ch, "intracomunitario", in.Intracomunitario)
			setOptional(ch, "notas", in.Notas)
			return ch, nil
		},
	})
}
