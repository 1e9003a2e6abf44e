package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service servicio ofertado con tarifa diaria. Nombre único por usuario.
type Service struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	TarifaDia   decimal.Decimal `json:"tarifa_dia"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
