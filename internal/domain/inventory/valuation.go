// Package inventory contiene servicios de dominio sobre las unidades de un producto.
package inventory

import "github.com/shopspring/decimal"

// Valuation valor de compra acumulado de las unidades de un producto.
type Valuation struct {
	Units       int             // unidades con precio de compra conocido
	Unpriced    int             // unidades sin precio de compra
	Total       decimal.Decimal // suma de precios de compra
	AverageCost decimal.Decimal // coste medio ponderado por unidad
}

// WeightedAverage coste medio tras incorporar qty unidades a unitCost.
// NuevoCosto = ((Stock * CostoActual) + (Cant * CostoEntrada)) / (Stock + Cant)
func WeightedAverage(stock, cost, qty, unitCost decimal.Decimal) decimal.Decimal {
	sum := stock.Add(qty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return stock.Mul(cost).Add(qty.Mul(unitCost)).Div(sum)
}

// Value valora una lista de precios de compra; nil cuenta como unidad sin precio.
func Value(prices []*decimal.Decimal) Valuation {
	v := Valuation{Total: decimal.Zero, AverageCost: decimal.Zero}
	one := decimal.NewFromInt(1)
	for _, p := range prices {
		if p == nil {
			v.Unpriced++
			continue
		}
		v.AverageCost = WeightedAverage(decimal.NewFromInt(int64(v.Units)), v.AverageCost, one, *p)
		v.Total = v.Total.Add(*p)
		v.Units++
	}
	return v
}
