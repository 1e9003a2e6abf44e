package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/validation"
	"github.com/jhoicas/gestion-api/internal/domain"
)

func TestStruct_ReportsAllInvalidFields(t *testing.T) {
	v := validation.New()
	in := dto.CreateProductRequest{
		Nombre:      "   ",
		PrecioBase:  decimal.NewFromInt(-1),
		CategoriaID: "no-es-uuid",
	}
	err := v.Struct(&in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, verr.Fields, "nombre")
	assert.Contains(t, verr.Fields, "precio_base")
	assert.Contains(t, verr.Fields, "categoria_id")
	assert.Len(t, verr.Fields, 3)
}

func TestStruct_NormalizesStrings(t *testing.T) {
	v := validation.New()
	// "e" + acento combinante se compone a "é" (NFC)
	in := dto.NameRequest{Nombre: "  Cafe\u0301  "}
	require.NoError(t, v.Struct(&in))
	assert.Equal(t, "Caf\u00e9", in.Nombre)
}

func TestStruct_PasswordIsNotTrimmed(t *testing.T) {
	v := validation.New()
	in := dto.LoginRequest{Email: " ana@example.com ", Password: " secreto "}
	require.NoError(t, v.Struct(&in))
	assert.Equal(t, "ana@example.com", in.Email)
	assert.Equal(t, " secreto ", in.Password)
}

func TestStruct_OptionalFieldsAcceptBlank(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(&dto.CreatePersonnelRequest{Nombre: "Ana", Email: ""}))
	assert.Error(t, v.Struct(&dto.CreatePersonnelRequest{Nombre: "Ana", Email: "no-email"}))

	blank := ""
	assert.NoError(t, v.Struct(&dto.UpdateProductRequest{MarcaID: &blank}))
	bad := "x"
	assert.Error(t, v.Struct(&dto.UpdateProductRequest{MarcaID: &bad}))
}

func TestStruct_NestedAssignmentPath(t *testing.T) {
	v := validation.New()
	in := dto.ReplaceAssignmentsRequest{PuestosTrabajo: []dto.AssignmentRequest{
		{PuestoTrabajoID: "00000000-0000-0000-0000-000000000001"},
		{PuestoTrabajoID: "mal"},
	}}
	err := v.Struct(&in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "puestos_trabajo[1].puesto_trabajo_id")
}

func TestParseID(t *testing.T) {
	id, err := validation.ParseID("6F9619FF-8B86-D011-B42D-00C04FC964FF")
	require.NoError(t, err)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", id)

	_, err = validation.ParseID("123")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestOptional(t *testing.T) {
	assert.Nil(t, validation.Optional("   "))
	require.NotNil(t, validation.Optional(" x "))
	assert.Equal(t, "x", *validation.Optional(" x "))
}

func TestStruct_MoneyScaleAndRange(t *testing.T) {
	v := validation.New()
	cases := []struct {
		name  string
		price string
		ok    bool
	}{
		{"dos decimales", "12.34", true},
		{"cero final", "12.340", true},
		{"máximo", "9999999999.99", true},
		{"tres decimales", "12.345", false},
		{"fuera de rango", "123456789012.5", false},
		{"exactamente 1e10", "10000000000", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price := decimal.RequireFromString(tc.price)
			err := v.Struct(&dto.CreateProductRequest{
				Nombre:      "Altavoz",
				PrecioBase:  price,
				CategoriaID: "00000000-0000-0000-0000-000000000001",
			})
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "precio_base")
		})
	}
}

func TestStruct_MoneyOnOptionalFields(t *testing.T) {
	v := validation.New()
	bad := decimal.RequireFromString("0.001")
	err := v.Struct(&dto.UpdateAssignmentRequest{TarifaDia: &bad})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tarifa_dia")

	in := dto.ReplaceAssignmentsRequest{PuestosTrabajo: []dto.AssignmentRequest{
		{PuestoTrabajoID: "00000000-0000-0000-0000-000000000001", TarifaDia: &bad},
	}}
	require.ErrorAs(t, v.Struct(&in), &verr)
	assert.Contains(t, verr.Fields, "puestos_trabajo[0].tarifa_dia")

	good := decimal.RequireFromString("150.50")
	assert.NoError(t, v.Struct(&dto.UpdateAssignmentRequest{TarifaDia: &good}))
}
