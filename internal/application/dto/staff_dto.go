package dto

import "github.com/shopspring/decimal"

// CreatePersonnelRequest body para POST /api/personnel.
type CreatePersonnelRequest struct {
	Nombre    string `json:"nombre" validate:"notblank,max=100"`
	Apellidos string `json:"apellidos" validate:"max=200"`
	Email     string `json:"email" validate:"max=200,emailorblank"`
	Telefono  string `json:"telefono" validate:"max=30"`
	DNI       string `json:"dni" validate:"max=20"`
	Notas     string `json:"notas" validate:"max=2000"`
}

// UpdatePersonnelRequest body para PUT /api/personnel/:id.
type UpdatePersonnelRequest struct {
	Nombre    *string `json:"nombre" validate:"omitnil,notblank,max=100"`
	Apellidos *string `json:"apellidos" validate:"omitnil,max=200"`
	Email     *string `json:"email" validate:"omitnil,max=200,emailorblank"`
	Telefono  *string `json:"telefono" validate:"omitnil,max=30"`
	DNI       *string `json:"dni" validate:"omitnil,max=20"`
	Notas     *string `json:"notas" validate:"omitnil,max=2000"`
}

// RateRequest body de creación de puestos de trabajo y servicios.
type RateRequest struct {
	Nombre      string          `json:"nombre" validate:"notblank,max=200"`
	Descripcion string          `json:"descripcion" validate:"max=2000"`
	TarifaDia   decimal.Decimal `json:"tarifa_dia" validate:"gte=0,money"`
}

// UpdateRateRequest actualización parcial de puestos de trabajo y servicios.
type UpdateRateRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitnil,notblank,max=200"`
	Descripcion *string          `json:"descripcion" validate:"omitnil,max=2000"`
	TarifaDia   *decimal.Decimal `json:"tarifa_dia" validate:"omitnil,gte=0,money"`
}

// AssignmentRequest una asignación de puesto (POST /api/personnel/:id/positions y elementos del reemplazo).
type AssignmentRequest struct {
	PuestoTrabajoID string           `json:"puesto_trabajo_id" validate:"required,uuid"`
	FechaAsignacion string           `json:"fecha_asignacion" validate:"dateorblank"`
	TarifaDia       *decimal.Decimal `json:"tarifa_dia" validate:"omitnil,gte=0,money"`
}

// ReplaceAssignmentsRequest body de PUT /api/personnel/:id/positions: sustituye el conjunto completo.
type ReplaceAssignmentsRequest struct {
	PuestosTrabajo []AssignmentRequest `json:"puestos_trabajo" validate:"required,dive"`
}

// UpdateAssignmentRequest body de PUT /api/personnel/:id/positions/:posId.
// tarifa_dia null no se distingue de ausente; para volver a la tarifa del puesto usar reset_tarifa.
type UpdateAssignmentRequest struct {
	FechaAsignacion *string          `json:"fecha_asignacion" validate:"omitnil,notblank,datetime=2006-01-02"`
	TarifaDia       *decimal.Decimal `json:"tarifa_dia" validate:"omitnil,gte=0,money"`
	ResetTarifa     bool             `json:"reset_tarifa"`
}
