package cart

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/core/internal/domain/shared/valueobject"
)

// Pricing rules. Shipping is free strictly above the threshold, otherwise
// a flat fee applies; tax is a flat rate on the rounded items subtotal.
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.NewFromInt(10)
	taxRate               = decimal.NewFromFloat(0.15)
)

// Totals holds the four derived price fields of a cart. All values are
// decimal strings with exactly two fractional digits, ready for display
// and for the persisted snapshot; storing the formatted form keeps
// rounding error from re-accumulating across sessions.
type Totals struct {
	ItemsPrice    string
	ShippingPrice string
	TaxPrice      string
	TotalPrice    string
}

// ComputeTotals derives the cart totals from the line items. Pure function:
//
//  1. itemsPrice = sum(price * qty), rounded half-up to 2 places
//  2. shippingPrice = 0 if itemsPrice > 100, else 10
//  3. taxPrice = round2(itemsPrice * 0.15)
//  4. totalPrice = round2(itemsPrice + shippingPrice + taxPrice)
func ComputeTotals(items []LineItem) Totals {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Amount().Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	itemsPrice := valueobject.Round2(sum)

	shippingPrice := flatShippingFee
	if itemsPrice.GreaterThan(freeShippingThreshold) {
		shippingPrice = decimal.Zero
	}
	shippingPrice = valueobject.Round2(shippingPrice)

	taxPrice := valueobject.Round2(itemsPrice.Mul(taxRate))
	totalPrice := valueobject.Round2(itemsPrice.Add(shippingPrice).Add(taxPrice))

	return Totals{
		ItemsPrice:    itemsPrice.StringFixed(2),
		ShippingPrice: shippingPrice.StringFixed(2),
		TaxPrice:      taxPrice.StringFixed(2),
		TotalPrice:    totalPrice.StringFixed(2),
	}
}
