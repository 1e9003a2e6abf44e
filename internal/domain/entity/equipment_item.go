package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un equipo. Cualquier transición está permitida.
const (
	ItemStateDisponible    = "disponible"
	ItemStateAlquilado     = "alquilado"
	ItemStateMantenimiento = "mantenimiento"
	ItemStateAveriado      = "averiado"
)

// ItemStates lista ordenada de estados válidos.
var ItemStates = []string{ItemStateDisponible, ItemStateAlquilado, ItemStateMantenimiento, ItemStateAveriado}

// EquipmentItem unidad física de un producto. ProductoID no cambia tras la creación;
// NumeroSerie, si existe, es único por (usuario, producto).
type EquipmentItem struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	ProductoID   string           `json:"producto_id"`
	NumeroSerie  *string          `json:"numero_serie"`
	Notas        *string          `json:"notas"`
	Estado       string           `json:"estado"`
	FechaCompra  *time.Time       `json:"fecha_compra"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	ProveedorID  *string          `json:"proveedor_id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
