package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// tableDef describe cómo mapear una entidad a su tabla. Todas las tablas tienen id, user_id y nombre.
type tableDef[E any] struct {
	name string
	// selectCols columnas (o expresiones sobre el alias t) en el orden de scan.
	selectCols []string
	scan       func(s scanner) (*E, error)
	insertCols []string
	insertArgs func(e *E) []any
	updatable  map[string]bool
}

// OwnedTable adaptador genérico de OwnedRepository/NamedRepository sobre PostgreSQL.
// Cada consulta lleva el predicado user_id además del id.
type OwnedTable[E any] struct {
	q   Querier
	def tableDef[E]
}

func newOwnedTable[E any](q Querier, def tableDef[E]) *OwnedTable[E] {
	return &OwnedTable[E]{q: q, def: def}
}

func (t *OwnedTable[E]) selectSQL() string {
	return "SELECT " + strings.Join(t.def.selectCols, ", ") + " FROM " + t.def.name + " t"
}

// ListByOwner devuelve las filas del usuario ordenadas por nombre.
func (t *OwnedTable[E]) ListByOwner(ctx context.Context, ownerID string) ([]*E, error) {
	rows, err := t.q.Query(ctx, t.selectSQL()+" WHERE t.user_id = $1 ORDER BY t.nombre, t.created_at", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.def.name, err)
	}
	defer rows.Close()
	list := make([]*E, 0)
	for rows.Next() {
		e, err := t.def.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.def.name, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID devuelve (nil, nil) si no existe o es de otro usuario.
func (t *OwnedTable[E]) GetByID(ctx context.Context, ownerID, id string) (*E, error) {
	row := t.q.QueryRow(ctx, t.selectSQL()+" WHERE t.user_id = $1 AND t.id = $2", ownerID, id)
	e, err := t.def.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.def.name, err)
	}
	return e, nil
}

// Create inserta la fila. Unicidad -> ErrDuplicate; referencia rota -> ErrInvalidInput.
func (t *OwnedTable[E]) Create(ctx context.Context, e *E) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.def.name, strings.Join(t.def.insertCols, ", "), placeholders(len(t.def.insertCols)))
	if _, err := t.q.Exec(ctx, query, t.def.insertArgs(e)...); err != nil {
		return classifyWrite(t.def.name, "insert", err)
	}
	return nil
}

// Update escribe solo las columnas de ch y relee la fila.
func (t *OwnedTable[E]) Update(ctx context.Context, ownerID, id string, ch repository.Changes) (*E, error) {
	set, args, err := setClause(ch, t.def.updatable, 3)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", t.def.name, err)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE user_id = $1 AND id = $2", t.def.name, set)
	tag, err := t.q.Exec(ctx, query, append([]any{ownerID, id}, args...)...)
	if err != nil {
		return nil, classifyWrite(t.def.name, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return t.GetByID(ctx, ownerID, id)
}

// Delete devuelve las filas borradas. Si otras tablas la referencian (RESTRICT) -> ErrInUse.
func (t *OwnedTable[E]) Delete(ctx context.Context, ownerID, id string) (int64, error) {
	tag, err := t.q.Exec(ctx, "DELETE FROM "+t.def.name+" WHERE user_id = $1 AND id = $2", ownerID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrInUse
		}
		return 0, fmt.Errorf("delete %s: %w", t.def.name, err)
	}
	return tag.RowsAffected(), nil
}

// NameTaken consulta previa de unicidad (nombre exacto).
func (t *OwnedTable[E]) NameTaken(ctx context.Context, ownerID, name, excludeID string) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM " + t.def.name +
		" WHERE user_id = $1 AND nombre = $2 AND ($3 = '' OR id::text <> $3))"
	var taken bool
	if err := t.q.QueryRow(ctx, query, ownerID, name, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("name check %s: %w", t.def.name, err)
	}
	return taken, nil
}

func classifyWrite(table, op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		if field := foreignKeyField(table, err); field != "" {
			return domain.NewValidationError(field, "referencia no válida")
		}
		return domain.ErrInvalidInput
	default:
		return fmt.Errorf("%s %s: %w", op, table, err)
	}
}
