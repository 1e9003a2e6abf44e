package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de alquiler.
// Stock no se persiste: es el número de equipos (EquipmentItem) del producto.
type Product struct {
	ID                     string           `json:"id"`
	UserID                 string           `json:"user_id"`
	Nombre                 string           `json:"nombre"`
	Descripcion            *string          `json:"descripcion"`
	Stock                  int              `json:"stock"`
	PrecioBase             decimal.Decimal  `json:"precio_base"`
	PrecioAlquilerDia      decimal.Decimal  `json:"precio_alquiler_dia"`
	PrecioCompraReferencia *decimal.Decimal `json:"precio_compra_referencia"`
	CategoriaID            string           `json:"categoria_id"`
	MarcaID                *string          `json:"marca_id"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}
