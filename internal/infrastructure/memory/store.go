// Package memory implementa los puertos de persistencia sobre mapas protegidos por un mutex.
// Emula las restricciones del esquema Postgres (unicidad, cascadas, SET NULL) para
// desarrollo local (STORAGE_DRIVER=memory) y tests.
package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// Store agrupa todas las tablas bajo un único lock para que las cascadas sean atómicas.
type Store struct {
	mu sync.RWMutex

	users       *UserRepo
	clients     *OwnedTable[entity.Client]
	brands      *OwnedTable[entity.Brand]
	categories  *OwnedTable[entity.Category]
	products    *OwnedTable[entity.Product]
	personnel   *OwnedTable[entity.Personnel]
	positions   *OwnedTable[entity.JobPosition]
	services    *OwnedTable[entity.Service]
	providers   *OwnedTable[entity.Provider]
	items       *ItemRepo
	assignments *AssignmentRepo
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	s := &Store{}
	s.users = &UserRepo{st: s, rows: map[string]*entity.User{}}
	s.items = &ItemRepo{st: s, rows: map[string]*entity.EquipmentItem{}}
	s.assignments = &AssignmentRepo{st: s, rows: map[string]*entity.Assignment{}}

	s.clients = newTable(s, false, func(e *entity.Client) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.personnel = newTable(s, false, func(e *entity.Personnel) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.providers = newTable(s, false, func(e *entity.Provider) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.brands = newTable(s, true, func(e *entity.Brand) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.categories = newTable(s, true, func(e *entity.Category) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.products = newTable(s, true, func(e *entity.Product) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.positions = newTable(s, true, func(e *entity.JobPosition) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })
	s.services = newTable(s, true, func(e *entity.Service) rowKeys { return rowKeys{e.ID, e.UserID, e.Nombre} })

	// productos.categoria_id ON DELETE RESTRICT
	s.categories.onDelete = func(id string) error {
		for _, p := range s.products.rows {
			if p.CategoriaID == id {
				return domain.ErrInUse
			}
		}
		return nil
	}
	// productos.marca_id ON DELETE SET NULL
	s.brands.onDelete = func(id string) error {
		for pid, p := range s.products.rows {
			if p.MarcaID != nil && *p.MarcaID == id {
				cp := *p
				cp.MarcaID = nil
				s.products.rows[pid] = &cp
			}
		}
		return nil
	}
	// equipo_items.producto_id ON DELETE CASCADE
	s.products.onDelete = func(id string) error {
		for iid, it := range s.items.rows {
			if it.ProductoID == id {
				delete(s.items.rows, iid)
			}
		}
		return nil
	}
	// equipo_items.proveedor_id ON DELETE SET NULL
	s.providers.onDelete = func(id string) error {
		for iid, it := range s.items.rows {
			if it.ProveedorID != nil && *it.ProveedorID == id {
				cp := *it
				cp.ProveedorID = nil
				s.items.rows[iid] = &cp
			}
		}
		return nil
	}
	// personal_puestos_trabajo ON DELETE CASCADE en ambos extremos
	s.personnel.onDelete = func(id string) error {
		s.assignments.removeWhere(func(a *entity.Assignment) bool { return a.PersonalID == id })
		return nil
	}
	s.positions.onDelete = func(id string) error {
		s.assignments.removeWhere(func(a *entity.Assignment) bool { return a.PuestoTrabajoID == id })
		return nil
	}
	// stock derivado del número de equipos
	s.products.view = func(p *entity.Product) {
		n := 0
		for _, it := range s.items.rows {
			if it.ProductoID == p.ID {
				n++
			}
		}
		p.Stock = n
	}
	return s
}

func (s *Store) Users() *UserRepo                              { return s.users }
func (s *Store) Clients() *OwnedTable[entity.Client]           { return s.clients }
func (s *Store) Brands() *OwnedTable[entity.Brand]             { return s.brands }
func (s *Store) Categories() *OwnedTable[entity.Category]      { return s.categories }
func (s *Store) Products() *OwnedTable[entity.Product]         { return s.products }
func (s *Store) Personnel() *OwnedTable[entity.Personnel]      { return s.personnel }
func (s *Store) JobPositions() *OwnedTable[entity.JobPosition] { return s.positions }
func (s *Store) Services() *OwnedTable[entity.Service]         { return s.services }
func (s *Store) Providers() *OwnedTable[entity.Provider]       { return s.providers }
func (s *Store) EquipmentItems() *ItemRepo                     { return s.items }
func (s *Store) Assignments() *AssignmentRepo                  { return s.assignments }

// applyChanges devuelve una copia nueva de cur con las columnas de ch sobrescritas.
// Los nombres de columna coinciden con las etiquetas json de la entidad.
func applyChanges[E any](cur *E, ch repository.Changes) (*E, error) {
	raw, err := json.Marshal(cur)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for col, v := range ch {
		if _, ok := fields[col]; !ok {
			return nil, fmt.Errorf("memory: columna no actualizable %q", col)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("memory: columna %q: %w", col, err)
		}
		fields[col] = b
	}
	raw, err = json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var out E
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func sortByName[E any](list []*E, name func(*E) string) {
	sort.SliceStable(list, func(i, j int) bool { return name(list[i]) < name(list[j]) })
}
