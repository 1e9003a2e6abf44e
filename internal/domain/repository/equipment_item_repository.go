package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// EquipmentItemRepository persistencia de equipos, siempre acotada a (usuario, producto).
type EquipmentItemRepository interface {
	ListByProduct(ctx context.Context, ownerID, productID string) ([]*entity.EquipmentItem, error)
	GetByID(ctx context.Context, ownerID, productID, id string) (*entity.EquipmentItem, error)
	Create(ctx context.Context, item *entity.EquipmentItem) error
	Update(ctx context.Context, ownerID, productID, id string, ch Changes) (*entity.EquipmentItem, error)
	Delete(ctx context.Context, ownerID, productID, id string) (int64, error)
	SerialTaken(ctx context.Context, ownerID, productID, serial, excludeID string) (bool, error)
}
