package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestWeightedAverage(t *testing.T) {
	got := WeightedAverage(decimal.NewFromInt(2), decimal.NewFromInt(100), decimal.NewFromInt(1), decimal.NewFromInt(130))
	assert.True(t, decimal.NewFromInt(110).Equal(got), got.String())

	assert.True(t, WeightedAverage(decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(5)).IsZero())
}

func TestValue(t *testing.T) {
	v := Value([]*decimal.Decimal{d("100"), nil, d("150.50"), d("49.50")})
	assert.Equal(t, 3, v.Units)
	assert.Equal(t, 1, v.Unpriced)
	assert.True(t, decimal.NewFromInt(300).Equal(v.Total), v.Total.String())
	assert.True(t, decimal.NewFromInt(100).Equal(v.AverageCost), v.AverageCost.String())
}

func TestValue_Empty(t *testing.T) {
	v := Value(nil)
	assert.Zero(t, v.Units)
	assert.True(t, v.Total.IsZero())
	assert.True(t, v.AverageCost.IsZero())
}
