package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Personnel persona del equipo de trabajo.
type Personnel struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Nombre    string    `json:"nombre"`
	Apellidos *string   `json:"apellidos"`
	Email     *string   `json:"email"`
	Telefono  *string   `json:"telefono"`
	DNI       *string   `json:"dni"`
	Notas     *string   `json:"notas"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobPosition puesto de trabajo con su tarifa diaria. Nombre único por usuario.
type JobPosition struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	TarifaDia   decimal.Decimal `json:"tarifa_dia"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Assignment relación personal <-> puesto. El par (PersonalID, PuestoTrabajoID) es único.
// TarifaDia, si no es nil, sustituye a la tarifa del puesto.
type Assignment struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	PersonalID      string           `json:"personal_id"`
	PuestoTrabajoID string           `json:"puesto_trabajo_id"`
	FechaAsignacion time.Time        `json:"fecha_asignacion"`
	TarifaDia       *decimal.Decimal `json:"tarifa_dia"`
	Puesto          *JobPosition     `json:"puesto_trabajo,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// TarifaEfectiva tarifa aplicable: la propia de la asignación o la del puesto.
func (a *Assignment) TarifaEfectiva() decimal.Decimal {
	if a.TarifaDia != nil {
		return *a.TarifaDia
	}
	if a.Puesto != nil {
		return a.Puesto.TarifaDia
	}
	return decimal.Zero
}
