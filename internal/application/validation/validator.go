// Package validation valida payloads y parámetros de ruta antes de cualquier acceso a la base de datos.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestion-api/internal/domain"
)

// Validator envuelve go-playground/validator con las reglas propias de la API.
// Es seguro para uso concurrente.
type Validator struct {
	v *validator.Validate
}

// New construye el validador: nombres de campo desde el tag json y reglas notblank/emailorblank/fecha/money.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// decimal.Decimal se valida como número (gte, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	plain := validator.New()
	_ = v.RegisterValidation("emailorblank", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || plain.Var(s, "email") == nil
	})
	_ = v.RegisterValidation("dateorblank", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || plain.Var(s, "datetime=2006-01-02") == nil
	})
	_ = v.RegisterValidation("uuidorblank", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || plain.Var(s, "uuid") == nil
	})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := rawDecimal(fl)
		return ok && d.Equal(d.Truncate(2)) && d.Abs().LessThan(maxMoney)
	})
	return &Validator{v: v}
}

// maxMoney cota exclusiva de las columnas NUMERIC(12,2).
var maxMoney = decimal.New(1, 10)

// rawDecimal recupera el decimal original del campo; el tipo registrado arriba solo expone un float64.
func rawDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr && !parent.IsNil() {
		parent = parent.Elem()
	}
	if parent.Kind() == reflect.Struct {
		f := parent.FieldByName(fl.StructFieldName())
		for f.Kind() == reflect.Ptr && !f.IsNil() {
			f = f.Elem()
		}
		if f.IsValid() && f.CanInterface() {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				return d, true
			}
		}
	}
	if k := fl.Field().Kind(); k == reflect.Float64 || k == reflect.Float32 {
		return decimal.NewFromFloat(fl.Field().Float()), true
	}
	return decimal.Decimal{}, false
}

// Struct normaliza los strings de in (trim + NFC) y lo valida.
// Devuelve *domain.ValidationError con TODOS los campos inválidos.
func (val *Validator) Struct(in interface{}) error {
	Normalize(in)
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ErrInvalidInput
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldPath(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = message(fe)
		}
	}
	return &domain.ValidationError{Fields: fields}
}

// ParseID valida que el parámetro de ruta tenga forma de UUID.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return id.String(), nil
}

// fieldPath quita el nombre del struct raíz del namespace: "CreateX.items[0].id" -> "items[0].id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "max":
		return "supera la longitud máxima de " + fe.Param()
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid", "uuid4", "uuidorblank":
		return "debe ser un identificador válido"
	case "email", "emailorblank":
		return "debe ser un email válido"
	case "datetime", "dateorblank":
		return "debe ser una fecha con formato AAAA-MM-DD"
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "money":
		return "debe ser un importe con como máximo 2 decimales y menor que 10000000000"
	case "dive", "unique":
		return "contiene elementos repetidos"
	default:
		return "no es válido"
	}
}

// Normalize recorre in (puntero a struct) y deja todos los strings, incluidos los *string
// y los de structs/slices anidados, sin espacios laterales y en forma Unicode NFC.
// Un *string en blanco sigue presente (vale ""): para una actualización significa "vaciar el campo".
// Los campos con tag `normalize:"-"` (contraseñas) no se tocan.
func Normalize(in interface{}) {
	normalizeValue(reflect.ValueOf(in))
}

func normalizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			normalizeValue(v.Elem())
		}
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(decimal.Decimal{}) {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.IsExported() && f.Tag.Get("normalize") != "-" {
				normalizeValue(v.Field(i))
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			normalizeValue(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(Clean(v.String()))
		}
	}
}

// Clean aplica trim y normalización NFC a un string.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Optional convierte un string en blanco en nil (NULL).
func Optional(s string) *string {
	s = Clean(s)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalPtr igual que Optional para un *string.
func OptionalPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return Optional(*s)
}
