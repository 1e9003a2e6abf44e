package postgres

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// foreignKeyField deduce la columna de una violación 23503 a partir del nombre por defecto
// de la constraint (<tabla>_<columna>_fkey). Devuelve "" si no se puede deducir.
func foreignKeyField(table string, err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	name, ok := strings.CutSuffix(pgErr.ConstraintName, "_fkey")
	if !ok {
		return ""
	}
	field, ok := strings.CutPrefix(name, table+"_")
	if !ok || field == "" {
		return ""
	}
	return field
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

// setClause construye "a = $n, b = $n+1" con las columnas en orden alfabético.
// Solo se aceptan columnas de allowed; cualquier otra es un error de programación.
func setClause(ch repository.Changes, allowed map[string]bool, start int) (string, []any, error) {
	cols := make([]string, 0, len(ch))
	for col := range ch {
		if !allowed[col] {
			return "", nil, fmt.Errorf("columna no actualizable: %q", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s = $%d", col, start+i)
		args[i] = ch[col]
	}
	return strings.Join(parts, ", "), args, nil
}

// columnSet convierte una lista de columnas en el mapa que espera setClause.
func columnSet(cols ...string) map[string]bool {
	m := make(map[string]bool, len(cols))
	for _, c := range cols {
		m[c] = true
	}
	return m
}

// placeholders devuelve "$1, $2, ..., $n".
func placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}
