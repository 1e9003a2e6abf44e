package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var errSerialTaken = &domain.ConflictError{
	Field:   "numero_serie",
	Message: "ya existe un equipo con ese número de serie para este producto",
}

// EquipmentItemUseCase casos de uso de los equipos de un producto.
// Todas las operaciones exigen que el producto sea del usuario (si no, ErrNotFound).
type EquipmentItemUseCase struct {
	items     repository.EquipmentItemRepository
	products  repository.ProductRepository
	providers repository.ProviderRepository
}

// NewEquipmentItemUseCase construye el caso de uso.
func NewEquipmentItemUseCase(
	items repository.EquipmentItemRepository,
	products repository.ProductRepository,
	providers repository.ProviderRepository,
) *EquipmentItemUseCase {
	return &EquipmentItemUseCase{items: items, products: products, providers: providers}
}

// List equipos del producto.
func (uc *EquipmentItemUseCase) List(ctx context.Context, ownerID, productID string) ([]*entity.EquipmentItem, error) {
	if err := uc.requireProduct(ctx, ownerID, productID); err != nil {
		return nil, err
	}
	list, err := uc.items.ListByProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.EquipmentItem{}
	}
	return list, nil
}

// Get un equipo del producto.
func (uc *EquipmentItemUseCase) Get(ctx context.Context, ownerID, productID, id string) (*entity.EquipmentItem, error) {
	if err := uc.requireProduct(ctx, ownerID, productID); err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(ctx, ownerID, productID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Create da de alta un equipo. Estado por defecto: disponible.
func (uc *EquipmentItemUseCase) Create(ctx context.Context, ownerID, productID string, in dto.CreateEquipmentItemRequest) (*entity.EquipmentItem, error) {
	if err := uc.requireProduct(ctx, ownerID, productID); err != nil {
		return nil, err
	}
	fecha, err := parseDate("fecha_compra", in.FechaCompra)
	if err != nil {
		return nil, err
	}
	proveedorID := validation.Optional(in.ProveedorID)
	if proveedorID != nil {
		if err := uc.checkProvider(ctx, ownerID, *proveedorID); err != nil {
			return nil, err
		}
	}
	serie := validation.Optional(in.NumeroSerie)
	if serie != nil {
		if err := uc.checkSerial(ctx, ownerID, productID, *serie, ""); err != nil {
			return nil, err
		}
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.ItemStateDisponible
	}
	now := time.Now()
	item := &entity.EquipmentItem{
		ID:           uuid.New().String(),
		UserID:       ownerID,
		ProductoID:   productID,
		NumeroSerie:  serie,
		Notas:        validation.Optional(in.Notas),
		Estado:       estado,
		FechaCompra:  fecha,
		PrecioCompra: in.PrecioCompra,
		ProveedorID:  proveedorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errSerialTaken
		}
		return nil, err
	}
	return item, nil
}

// Update actualización parcial. El estado puede pasar a cualquier otro sin restricciones.
func (uc *EquipmentItemUseCase) Update(ctx context.Context, ownerID, productID, id string, in dto.UpdateEquipmentItemRequest) (*entity.EquipmentItem, error) {
	if _, err := uc.Get(ctx, ownerID, productID, id); err != nil {
		return nil, err
	}
	ch := repository.Changes{}
	if in.NumeroSerie != nil {
		serie := validation.OptionalPtr(in.NumeroSerie)
		if serie != nil {
			if err := uc.checkSerial(ctx, ownerID, productID, *serie, id); err != nil {
				return nil, err
			}
		}
		ch["numero_serie"] = serie
	}
	setOptional(ch, "notas", in.Notas)
	setRequired(ch, "estado", in.Estado)
	if in.FechaCompra != nil {
		fecha, err := parseDate("fecha_compra", *in.FechaCompra)
		if err != nil {
			return nil, err
		}
		ch["fecha_compra"] = fecha
	}
	setDecimal(ch, "precio_compra", in.PrecioCompra)
	if in.ProveedorID != nil {
		proveedorID := validation.OptionalPtr(in.ProveedorID)
		if proveedorID != nil {
			if err := uc.checkProvider(ctx, ownerID, *proveedorID); err != nil {
				return nil, err
			}
		}
		ch["proveedor_id"] = proveedorID
	}
	if len(ch) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	ch["updated_at"] = time.Now()

	item, err := uc.items.Update(ctx, ownerID, productID, id, ch)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errSerialTaken
		}
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Delete elimina un equipo; ErrNotFound si no había nada que borrar.
func (uc *EquipmentItemUseCase) Delete(ctx context.Context, ownerID, productID, id string) error {
	if err := uc.requireProduct(ctx, ownerID, productID); err != nil {
		return err
	}
	n, err := uc.items.Delete(ctx, ownerID, productID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *EquipmentItemUseCase) requireProduct(ctx context.Context, ownerID, productID string) error {
	p, err := uc.products.GetByID(ctx, ownerID, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *EquipmentItemUseCase) checkProvider(ctx context.Context, ownerID, id string) error {
	p, err := uc.providers.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NewValidationError("proveedor_id", "proveedor no válido")
	}
	return nil
}

func (uc *EquipmentItemUseCase) checkSerial(ctx context.Context, ownerID, productID, serial, excludeID string) error {
	taken, err := uc.items.SerialTaken(ctx, ownerID, productID, serial, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errSerialTaken
	}
	return nil
}
