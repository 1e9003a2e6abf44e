package postgres

import (
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository   = (*OwnedTable[entity.Client])(nil)
	_ repository.ProviderRepository = (*OwnedTable[entity.Provider])(nil)
)

// Clientes y proveedores comparten la misma ficha de contacto.
var contactCols = []string{
	"id", "user_id", "nombre", "tipo", "persona_contacto", "nif", "direccion", "codigo_postal",
	"ciudad", "provincia", "pais", "telefono", "email", "web", "intracomunitario", "notas",
	"created_at", "updated_at",
}

var contactUpdatable = columnSet(
	"nombre", "tipo", "persona_contacto", "nif", "direccion", "codigo_postal", "ciudad",
	"provincia", "pais", "telefono", "email", "web", "intracomunitario", "notas", "updated_at",
)

// NewClientRepository adaptador de la tabla clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *OwnedTable[entity.Client] {
	return newOwnedTable(q, tableDef[entity.Client]{
		name:       "clientes",
		selectCols: prefixed(contactCols),
		insertCols: contactCols,
		updatable:  contactUpdatable,
		scan: func(s scanner) (*entity.Client, error) {
			var c entity.Client
			err := s.Scan(&c.ID, &c.UserID, &c.Nombre, &c.Tipo, &c.PersonaContacto, &c.NIF, &c.Direccion,
				&c.CodigoPostal, &c.Ciudad, &c.Provincia, &c.Pais, &c.Telefono, &c.Email, &c.Web,
				&c.Intracomunitario, &c.Notas, &c.CreatedAt, &c.UpdatedAt)
			return &c, err
		},
		insertArgs: func(c *entity.Client) []any {
			return []any{c.ID, c.UserID, c.Nombre, c.Tipo, c.PersonaContacto, c.NIF, c.Direccion,
				c.CodigoPostal, c.Ciudad, c.Provincia, c.Pais, c.Telefono, c.Email, c.Web,
				c.Intracomunitario, c.Notas, c.CreatedAt, c.UpdatedAt}
		},
	})
}

// NewProviderRepository adaptador de la tabla proveedores.
func NewProviderRepository(q Querier) *OwnedTable[entity.Provider] {
	return newOwnedTable(q, tableDef[entity.Provider]{
		name:       "proveedores",
		selectCols: prefixed(contactCols),
		insertCols: contactCols,
		updatable:  contactUpdatable,
		scan: func(s scanner) (*entity.Provider, error) {
			var p entity.Provider
			err := s.Scan(&p.ID, &p.UserID, &p.Nombre, &p.Tipo, &p.PersonaContacto, &p.NIF, &p.Direccion,
				&p.CodigoPostal, &p.Ciudad, &p.Provincia, &p.Pais, &p.Telefono, &p.Email, &p.Web,
				&p.Intracomunitario, &p.Notas, &p.CreatedAt, &p.UpdatedAt)
			return &p, err
		},
		insertArgs: func(p *entity.Provider) []any {
			return []any{p.ID, p.UserID, p.Nombre, p.Tipo, p.PersonaContacto, p.NIF, p.Direccion,
				p.CodigoPostal, p.Ciudad, p.Provincia, p.Pais, p.Telefono, p.Email, p.Web,
				p.Intracomunitario, p.Notas, p.CreatedAt, p.UpdatedAt}
		},
	})
}

// prefixed califica las columnas con el alias t de selectSQL.
func prefixed(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = "t." + c
	}
	return out
}
