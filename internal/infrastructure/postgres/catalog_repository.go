package postgres

import (
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var (
	_ repository.BrandRepository    = (*OwnedTable[entity.Brand])(nil)
	_ repository.CategoryRepository = (*OwnedTable[entity.Category])(nil)
)

var nameCols = []string{"id", "user_id", "nombre", "created_at", "updated_at"}

// NewBrandRepository adaptador de la tabla marcas.
func NewBrandRepository(q Querier) *OwnedTable[entity.Brand] {
	return newOwnedTable(q, tableDef[entity.Brand]{
		name:       "marcas",
		selectCols: prefixed(nameCols),
		insertCols: nameCols,
		updatable:  columnSet("nombre", "updated_at"),
		scan: func(s scanner) (*entity.Brand, error) {
			var b entity.Brand
			err := s.Scan(&b.ID, &b.UserID, &b.Nombre, &b.CreatedAt, &b.UpdatedAt)
			return &b, err
		},
		insertArgs: func(b *entity.Brand) []any {
			return []any{b.ID, b.UserID, b.Nombre, b.CreatedAt, b.UpdatedAt}
		},
	})
}

// NewCategoryRepository adaptador de la tabla categorias_producto.
func NewCategoryRepository(q Querier) *OwnedTable[entity.Category] {
	return newOwnedTable(q, tableDef[entity.Category]{
		name:       "categorias_producto",
		selectCols: prefixed(nameCols),
		insertCols: nameCols,
		updatable:  columnSet("nombre", "updated_at"),
		scan: func(s scanner) (*entity.Category, error) {
			var c entity.Category
			err := s.Scan(&c.ID, &c.UserID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt)
			return &c, err
		},
		insertArgs: func(c *entity.Category) []any {
			return []any{c.ID, c.UserID, c.Nombre, c.CreatedAt, c.UpdatedAt}
		},
	})
}
