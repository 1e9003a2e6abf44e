package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado o sin acceso")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrNothingToUpdate    = errors.New("no hay campos para actualizar")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ValidationError agrupa todos los campos inválidos de un payload (campo -> mensaje).
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un error con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ConflictError violación de unicidad con el campo en conflicto.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrConflict).
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ErrInUse el registro no se puede borrar porque otros lo referencian.
var ErrInUse = &ConflictError{Field: "id", Message: "el registro está en uso por otros datos"}
