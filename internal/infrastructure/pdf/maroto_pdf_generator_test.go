package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,00 €", formatMoney(decimal.Zero))
	assert.Equal(t, "25,50 €", formatMoney(decimal.RequireFromString("25.5")))
	assert.Equal(t, "1.234.567,89 €", formatMoney(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "-1.000,00 €", formatMoney(decimal.NewFromInt(-1000)))
}

func TestGenerateInventorySheet(t *testing.T) {
	serial := "SN-1"
	prov := "prov-1"
	sheet := &usecase.InventorySheet{
		Product: &entity.Product{
			Nombre:            "Altavoz",
			PrecioBase:        decimal.NewFromInt(300),
			PrecioAlquilerDia: decimal.RequireFromString("25.5"),
		},
		Category: "Audio",
		Items: []*entity.EquipmentItem{
			{NumeroSerie: &serial, Estado: entity.ItemStateAlquilado, ProveedorID: &prov},
			{Estado: entity.ItemStateDisponible},
		},
		Providers:   map[string]string{prov: "Proveedor SA"},
		StateTotals: map[string]int{entity.ItemStateAlquilado: 1, entity.ItemStateDisponible: 1},
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	doc, err := NewMarotoPDFGenerator().GenerateInventorySheet(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
