package postgres

import (
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var (
	_ repository.PersonnelRepository   = (*OwnedTable[entity.Personnel])(nil)
	_ repository.JobPositionRepository = (*OwnedTable[entity.JobPosition])(nil)
	_ repository.ServiceRepository     = (*OwnedTable[entity.Service])(nil)
)

var personnelCols = []string{
	"id", "user_id", "nombre", "apellidos", "email", "telefono", "dni", "notas", "created_at", "updated_at",
}

// NewPersonnelRepository adaptador de la tabla personal.
func NewPersonnelRepository(q Querier) *OwnedTable[entity.Personnel] {
	return newOwnedTable(q, tableDef[entity.Personnel]{
		name:       "personal",
		selectCols: prefixed(personnelCols),
		insertCols: personnelCols,
		updatable:  columnSet("nombre", "apellidos", "email", "telefono", "dni", "notas", "updated_at"),
		scan: func(s scanner) (*entity.Personnel, error) {
			var p entity.Personnel
			err := s.Scan(&p.ID, &p.UserID, &p.Nombre, &p.Apellidos, &p.Email, &p.Telefono, &p.DNI,
				&p.Notas, &p.CreatedAt, &p.UpdatedAt)
			return &p, err
		},
		insertArgs: func(p *entity.Personnel) []any {
			return []any{p.ID, p.UserID, p.Nombre, p.Apellidos, p.Email, p.Telefono, p.DNI,
				p.Notas, p.CreatedAt, p.UpdatedAt}
		},
	})
}

// Puestos de trabajo y servicios: nombre, descripción y tarifa diaria.
var rateCols = []string{"id", "user_id", "nombre", "descripcion", "tarifa_dia", "created_at", "updated_at"}

var rateUpdatable = columnSet("nombre", "descripcion", "tarifa_dia", "updated_at")

// NewJobPositionRepository adaptador de la tabla puestos_trabajo.
func NewJobPositionRepository(q Querier) *OwnedTable[entity.JobPosition] {
	return newOwnedTable(q, tableDef[entity.JobPosition]{
		name:       "puestos_trabajo",
		selectCols: prefixed(rateCols),
		insertCols: rateCols,
		updatable:  rateUpdatable,
		scan: func(s scanner) (*entity.JobPosition, error) {
			var j entity.JobPosition
			err := s.Scan(&j.ID, &j.UserID, &j.Nombre, &j.Descripcion, &j.TarifaDia, &j.CreatedAt, &j.UpdatedAt)
			return &j, err
		},
		insertArgs: func(j *entity.JobPosition) []any {
			return []any{j.ID, j.UserID, j.Nombre, j.Descripcion, j.TarifaDia, j.CreatedAt, j.UpdatedAt}
		},
	})
}

// NewServiceRepository adaptador de la tabla servicios.
func NewServiceRepository(q Querier) *OwnedTable[entity.Service] {
	return newOwnedTable(q, tableDef[entity.Service]{
		name:       "servicios",
		selectCols: prefixed(rateCols),
		insertCols: rateCols,
		updatable:  rateUpdatable,
		scan: func(s scanner) (*entity.Service, error) {
			var v entity.Service
			err := s.Scan(&v.ID, &v.UserID, &v.Nombre, &v.Descripcion, &v.TarifaDia, &v.CreatedAt, &v.UpdatedAt)
			return &v, err
		},
		insertArgs: func(v *entity.Service) []any {
			return []any{v.ID, v.UserID, v.Nombre, v.Descripcion, v.TarifaDia, v.CreatedAt, v.UpdatedAt}
		},
	})
}
