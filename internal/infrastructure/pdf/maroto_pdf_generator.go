// Package pdf genera la hoja de inventario de un producto (A4) con Maroto v2.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + categoría/marca │ Fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIOS: base / alquiler día / compra referencia             │
//	│  RESUMEN: unidades por estado                                 │
//	│  VALORACIÓN: valor de compra y coste medio                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° serie | Estado | F. compra | P. compra | Proveedor │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var stateLabels = map[string]string{
	entity.ItemStateDisponible:    "Disponible",
	entity.ItemStateAlquilado:     "Alquilado",
	entity.ItemStateMantenimiento: "Mantenimiento",
	entity.ItemStateAveriado:      "Averiado",
}

// MarotoPDFGenerator implementa usecase.InventorySheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ usecase.InventorySheetGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventorySheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventorySheet(_ context.Context, sheet *usecase.InventorySheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de inventario: "+sheet.Product.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pricesRow(sheet.Product))
	m.AddRows(stateSummaryRow(sheet.StateTotals, len(sheet.Items)))
	m.AddRows(valuationRow(sheet.Valuation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(sheet.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin equipos registrados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(itemRows(sheet)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: producto con categoría y marca (izq), fecha (der).
func headerRow(sheet *usecase.InventorySheet) core.Row {
	sub := nonEmpty(sheet.Category, "Sin categoría")
	if sheet.Brand != "" {
		sub += "  |  " + sheet.Brand
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(sheet.Product.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(sub, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("HOJA DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generada: "+sheet.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func pricesRow(p *entity.Product) core.Row {
	ref := "-"
	if p.PrecioCompraReferencia != nil {
		ref = formatMoney(*p.PrecioCompraReferencia)
	}
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("PRECIO BASE", formatMoney(p.PrecioBase)),
		cell("ALQUILER / DÍA", formatMoney(p.PrecioAlquilerDia)),
		cell("COMPRA (REFERENCIA)", ref),
	)
}

// stateSummaryRow: total de unidades y desglose por estado.
func stateSummaryRow(totals map[string]int, total int) core.Row {
	parts := make([]string, 0, len(entity.ItemStates))
	for _, s := range entity.ItemStates {
		parts = append(parts, fmt.Sprintf("%s: %d", stateLabels[s], totals[s]))
	}
	return row.New(10).Add(
		col.New(3).Add(text.New(fmt.Sprintf("Unidades: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(9).Add(text.New(strings.Join(parts, "   |   "), props.Text{
			Size: 8, Top: 2, Color: colorGray,
		})),
	)
}

func valuationRow(v inventory.Valuation) core.Row {
	note := ""
	if v.Unpriced > 0 {
		note = fmt.Sprintf("%d sin precio de compra", v.Unpriced)
	}
	return row.New(8).Add(
		col.New(4).Add(text.New("Valor de compra: "+formatMoney(v.Total), props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New("Coste medio: "+formatMoney(v.AverageCost), props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(note, props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Right})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° serie", 3, align.Left),
		h("Estado", 2, align.Left),
		h("F. compra", 2, align.Center),
		h("P. compra", 2, align.Right),
		h("Proveedor", 3, align.Left),
	)
}

// itemRows: una fila por equipo.
func itemRows(sheet *usecase.InventorySheet) []core.Row {
	rows := make([]core.Row, 0, len(sheet.Items))
	for _, it := range sheet.Items {
		serie, fecha, precio, prov := "-", "-", "-", "-"
		if it.NumeroSerie != nil {
			serie = *it.NumeroSerie
		}
		if it.FechaCompra != nil {
			fecha = it.FechaCompra.Format("02/01/2006")
		}
		if it.PrecioCompra != nil {
			precio = formatMoney(*it.PrecioCompra)
		}
		if it.ProveedorID != nil {
			prov = nonEmpty(sheet.Providers[*it.ProveedorID], "-")
		}
		rows = append(rows, row.New(7).Add(
			col.New(3).Add(text.New(serie, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(stateLabels[it.Estado], it.Estado), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fecha, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(precio, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(prov, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato europeo con dos decimales: 1234.5 -> "1.234,50 €".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac + " €"
	if neg {
		out = "-" + out
	}
	return out
}
