package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.EquipmentItemRepository = (*EquipmentItemRepo)(nil)

// EquipmentItemRepo adaptador de la tabla equipo_items.
type EquipmentItemRepo struct {
	q Querier
}

// NewEquipmentItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentItemRepository(q Querier) *EquipmentItemRepo {
	return &EquipmentItemRepo{q: q}
}

const itemSelect = `
	SELECT id, user_id, producto_id, numero_serie, notas, estado, fecha_compra, precio_compra,
	       proveedor_id, created_at, updated_at
	FROM equipo_items`

var itemUpdatable = columnSet("numero_serie", "notas", "estado", "fecha_compra", "precio_compra",
	"proveedor_id", "updated_at")

func scanItem(s scanner) (*entity.EquipmentItem, error) {
	var it entity.EquipmentItem
	err := s.Scan(&it.ID, &it.UserID, &it.ProductoID, &it.NumeroSerie, &it.Notas, &it.Estado,
		&it.FechaCompra, &it.PrecioCompra, &it.ProveedorID, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

// ListByProduct equipos del producto, por número de serie y fecha de alta.
func (r *EquipmentItemRepo) ListByProduct(ctx context.Context, ownerID, productID string) ([]*entity.EquipmentItem, error) {
	rows, err := r.q.Query(ctx, itemSelect+`
		WHERE user_id = $1 AND producto_id = $2
		ORDER BY numero_serie NULLS LAST, created_at`, ownerID, productID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.EquipmentItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *EquipmentItemRepo) GetByID(ctx context.Context, ownerID, productID, id string) (*entity.EquipmentItem, error) {
	it, err := scanItem(r.q.QueryRow(ctx, itemSelect+` WHERE user_id = $1 AND producto_id = $2 AND id = $3`,
		ownerID, productID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func (r *EquipmentItemRepo) Create(ctx context.Context, it *entity.EquipmentItem) error {
	query := `
		INSERT INTO equipo_items (id, user_id, producto_id, numero_serie, notas, estado, fecha_compra,
		                          precio_compra, proveedor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query, it.ID, it.UserID, it.ProductoID, it.NumeroSerie, it.Notas, it.Estado,
		it.FechaCompra, it.PrecioCompra, it.ProveedorID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return classifyWrite("equipo_items", "insert", err)
	}
	return nil
}

func (r *EquipmentItemRepo) Update(ctx context.Context, ownerID, productID, id string, ch repository.Changes) (*entity.EquipmentItem, error) {
	set, args, err := setClause(ch, itemUpdatable, 4)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	query := "UPDATE equipo_items SET " + set + " WHERE user_id = $1 AND producto_id = $2 AND id = $3"
	tag, err := r.q.Exec(ctx, query, append([]any{ownerID, productID, id}, args...)...)
	if err != nil {
		return nil, classifyWrite("equipo_items", "update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, ownerID, productID, id)
}

func (r *EquipmentItemRepo) Delete(ctx context.Context, ownerID, productID, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM equipo_items WHERE user_id = $1 AND producto_id = $2 AND id = $3`,
		ownerID, productID, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EquipmentItemRepo) SerialTaken(ctx context.Context, ownerID, productID, serial, excludeID string) (bool, error) {
	var taken bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM equipo_items
			WHERE user_id = $1 AND producto_id = $2 AND numero_serie = $3 AND ($4 = '' OR id::text <> $4)
		)`, ownerID, productID, serial, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("serial check: %w", err)
	}
	return taken, nil
}
