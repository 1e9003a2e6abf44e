package dto

import "github.com/shopspring/decimal"

// NameRequest body de marcas y categorías (solo nombre).
type NameRequest struct {
	Nombre string `json:"nombre" validate:"notblank,max=100"`
}

// UpdateNameRequest actualización parcial de marcas y categorías.
type UpdateNameRequest struct {
	Nombre *string `json:"nombre" validate:"omitnil,notblank,max=100"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Nombre                 string           `json:"nombre" validate:"notblank,max=200"`
	Descripcion            string           `json:"descripcion" validate:"max=2000"`
	PrecioBase             decimal.Decimal  `json:"precio_base" validate:"gte=0,money"`
	PrecioAlquilerDia      decimal.Decimal  `json:"precio_alquiler_dia" validate:"gte=0,money"`
	PrecioCompraReferencia *decimal.Decimal `json:"precio_compra_referencia" validate:"omitnil,gte=0,money"`
	CategoriaID            string           `json:"categoria_id" validate:"required,uuid"`
	MarcaID                string           `json:"marca_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest body para PUT /api/products/:id. marca_id "" quita la marca.
type UpdateProductRequest struct {
	Nombre                 *string          `json:"nombre" validate:"omitnil,notblank,max=200"`
	Descripcion            *string          `json:"descripcion" validate:"omitnil,max=2000"`
	PrecioBase             *decimal.Decimal `json:"precio_base" validate:"omitnil,gte=0,money"`
	PrecioAlquilerDia      *decimal.Decimal `json:"precio_alquiler_dia" validate:"omitnil,gte=0,money"`
	PrecioCompraReferencia *decimal.Decimal `json:"precio_compra_referencia" validate:"omitnil,gte=0,money"`
	CategoriaID            *string          `json:"categoria_id" validate:"omitnil,uuid"`
	MarcaID                *string          `json:"marca_id" validate:"omitnil,uuidorblank"`
}

// CreateEquipmentItemRequest body para POST /api/products/:id/items.
type CreateEquipmentItemRequest struct {
	NumeroSerie  string           `json:"numero_serie" validate:"max=100"`
	Notas        string           `json:"notas" validate:"max=2000"`
	Estado       string           `json:"estado" validate:"omitempty,oneof=disponible alquilado mantenimiento averiado"`
	FechaCompra  string           `json:"fecha_compra" validate:"dateorblank"`
	PrecioCompra *decimal.Decimal `json:"precio_compra" validate:"omitnil,gte=0,money"`
	ProveedorID  string           `json:"proveedor_id" validate:"omitempty,uuid"`
}

// UpdateEquipmentItemRequest body para PUT /api/products/:id/items/:itemId.
// El producto del equipo no se puede cambiar.
type UpdateEquipmentItemRequest struct {
	NumeroSerie  *string          `json:"numero_serie" validate:"omitnil,max=100"`
	Notas        *string          `json:"notas" validate:"omitnil,max=2000"`
	Estado       *string          `json:"estado" validate:"omitnil,oneof=disponible alquilado mantenimiento averiado"`
	FechaCompra  *string          `json:"fecha_compra" validate:"omitnil,dateorblank"`
	PrecioCompra *decimal.Decimal `json:"precio_compra" validate:"omitnil,gte=0,money"`
	ProveedorID  *string          `json:"proveedor_id" validate:"omitnil,uuidorblank"`
}
