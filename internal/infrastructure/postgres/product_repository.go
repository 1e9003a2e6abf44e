package postgres

import (
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*OwnedTable[entity.Product])(nil)

var productCols = []string{
	"id", "user_id", "nombre", "descripcion", "precio_base", "precio_alquiler_dia",
	"precio_compra_referencia", "categoria_id", "marca_id", "created_at", "updated_at",
}

// NewProductRepository adaptador de la tabla productos. El stock se calcula contando equipo_items.
func NewProductRepository(q Querier) *OwnedTable[entity.Product] {
	return newOwnedTable(q, tableDef[entity.Product]{
		name: "productos",
		selectCols: append(prefixed(productCols),
			"(SELECT COUNT(*) FROM equipo_items ei WHERE ei.producto_id = t.id)::int AS stock"),
		insertCols: productCols,
		updatable: columnSet("nombre", "descripcion", "precio_base", "precio_alquiler_dia",
			"precio_compra_referencia", "categoria_id", "marca_id", "updated_at"),
		scan: func(s scanner) (*entity.Product, error) {
			var p entity.Product
			err := s.Scan(&p.ID, &p.UserID, &p.Nombre, &p.Descripcion, &p.PrecioBase, &p.PrecioAlquilerDia,
				&p.PrecioCompraReferencia, &p.CategoriaID, &p.MarcaID, &p.CreatedAt, &p.UpdatedAt, &p.Stock)
			return &p, err
		},
		insertArgs: func(p *entity.Product) []any {
			return []any{p.ID, p.UserID, p.Nombre, p.Descripcion, p.PrecioBase, p.PrecioAlquilerDia,
				p.PrecioCompraReferencia, p.CategoriaID, p.MarcaID, p.CreatedAt, p.UpdatedAt}
		},
	})
}
