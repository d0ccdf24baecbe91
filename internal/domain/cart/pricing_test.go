package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Equal(t, "0.00", totals.ItemsPrice)
	assert.Equal(t, "10.00", totals.ShippingPrice)
	assert.Equal(t, "0.00", totals.TaxPrice)
	assert.Equal(t, "10.00", totals.TotalPrice)
}

func TestComputeTotalsFreeShippingBoundary(t *testing.T) {
	t.Run("exactly 100.00 still pays shipping", func(t *testing.T) {
		totals := ComputeTotals([]LineItem{lineItem("a", 100.00, 1)})
		assert.Equal(t, "100.00", totals.ItemsPrice)
		assert.Equal(t, "10.00", totals.ShippingPrice)
	})

	t.Run("100.01 ships free", func(t *testing.T) {
		totals := ComputeTotals([]LineItem{lineItem("a", 100.01, 1)})
		assert.Equal(t, "100.01", totals.ItemsPrice)
		assert.Equal(t, "0.00", totals.ShippingPrice)
	})
}

func TestComputeTotalsTaxRounding(t *testing.T) {
	// 13.33 * 0.15 = 1.9995, rounds half-up to 2.00
	totals := ComputeTotals([]LineItem{lineItem("a", 13.33, 1)})
	assert.Equal(t, "13.33", totals.ItemsPrice)
	assert.Equal(t, "2.00", totals.TaxPrice)
	assert.Equal(t, "25.33", totals.TotalPrice)
}

func TestComputeTotalsQuantityMultiplication(t *testing.T) {
	totals := ComputeTotals([]LineItem{
		lineItem("a", 19.99, 3),
		lineItem("b", 5.50, 2),
	})
	// 59.97 + 11.00 = 70.97
	assert.Equal(t, "70.97", totals.ItemsPrice)
	assert.Equal(t, "10.00", totals.ShippingPrice)
	// 70.97 * 0.15 = 10.6455 -> 10.65 (tax applies to the rounded subtotal)
	assert.Equal(t, "10.65", totals.TaxPrice)
	assert.Equal(t, "91.62", totals.TotalPrice)
}

func TestComputeTotalsIsPure(t *testing.T) {
	items := []LineItem{lineItem("a", 60, 1)}
	first := ComputeTotals(items)
	second := ComputeTotals(items)
	assert.Equal(t, first, second)
}
