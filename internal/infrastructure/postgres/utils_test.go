package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

func TestSetClause_SortedAndNumbered(t *testing.T) {
	ch := repository.Changes{"nombre": "Acme", "descripcion": nil, "updated_at": "ts"}
	set, args, err := setClause(ch, columnSet("nombre", "descripcion", "updated_at"), 3)
	require.NoError(t, err)
	assert.Equal(t, "descripcion = $3, nombre = $4, updated_at = $5", set)
	assert.Equal(t, []any{nil, "Acme", "ts"}, args)
}

func TestSetClause_RejectsUnknownColumn(t *testing.T) {
	_, _, err := setClause(repository.Changes{"user_id": "otro"}, columnSet("nombre"), 1)
	assert.Error(t, err, "user_id nunca es actualizable")
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(3))
}

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(nil))

	assert.ErrorIs(t, classifyWrite("marcas", "insert", unique), domain.ErrDuplicate)
	err := classifyWrite("productos", "insert", fk)
	assert.Same(t, domain.ErrInvalidInput, err, "sin constraint conocida no se añade contexto interno")
	plain := errors.New("boom")
	assert.ErrorIs(t, classifyWrite("productos", "insert", plain), plain)
}

func TestClassifyWrite_ForeignKeyNamesField(t *testing.T) {
	fk := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503", ConstraintName: "productos_categoria_id_fkey"})

	err := classifyWrite("productos", "insert", fk)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, map[string]string{"categoria_id": "referencia no válida"}, verr.Fields)
	assert.NotContains(t, err.Error(), "insert productos")

	other := &pgconn.PgError{Code: "23503", ConstraintName: "fk_personalizada"}
	assert.Same(t, domain.ErrInvalidInput, classifyWrite("productos", "update", other))
}

func TestPrefixed(t *testing.T) {
	assert.Equal(t, []string{"t.id", "t.nombre"}, prefixed([]string{"id", "nombre"}))
}
