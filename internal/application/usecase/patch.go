package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// setRequired escribe un string obligatorio si viene en el payload.
func setRequired(ch repository.Changes, col string, v *string) {
	if v != nil {
		ch[col] = validation.Clean(*v)
	}
}

// setOptional escribe un string opcional; en blanco se guarda NULL.
func setOptional(ch repository.Changes, col string, v *string) {
	if v != nil {
		ch[col] = validation.OptionalPtr(v)
	}
}

func setBool(ch repository.Changes, col string, v *bool) {
	if v != nil {
		ch[col] = *v
	}
}

func setDecimal(ch repository.Changes, col string, v *decimal.Decimal) {
	if v != nil {
		ch[col] = *v
	}
}

// parseDate convierte "AAAA-MM-DD" (o blanco) en fecha opcional.
func parseDate(field, s string) (*time.Time, error) {
	s = validation.Clean(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.NewValidationError(field, "debe ser una fecha con formato AAAA-MM-DD")
	}
	return &t, nil
}
