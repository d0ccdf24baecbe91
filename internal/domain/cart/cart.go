package cart

import (
	"github.com/storefront/core/internal/domain/shared/valueobject"
)

// DefaultPaymentMethod is the payment method a fresh cart starts with
const DefaultPaymentMethod = "PayPal"

// LineItem is one product entry in the cart with a chosen quantity.
// It carries the full product record so the cart can render without a
// catalog round-trip; Qty is only advisory-bounded by CountInStock in the
// UI, never enforced here.
type LineItem struct {
	ProductID    string
	Name         string
	Image        string
	Brand        string
	Category     string
	Description  string
	Price        valueobject.Money
	CountInStock int
	Qty          int
	Rating       float64
	NumReviews   int
}

// Cart is the aggregate owning the line item sequence and the derived
// monetary totals. Items keep insertion order and are unique by ProductID.
// Every mutating operation recomputes all four totals before returning, so
// no stale-totals state is ever observable between operations.
//
// The aggregate itself never fails: unknown product IDs on remove are
// no-ops and quantities are taken as given.
type Cart struct {
	items           []LineItem
	shippingAddress valueobject.ShippingAddress
	paymentMethod   string
	totals          Totals
}

// New creates an empty cart with the default payment method
func New() *Cart {
	c := &Cart{
		paymentMethod: DefaultPaymentMethod,
	}
	c.recompute()
	return c
}

// AddItem adds a line item to the cart. If an item with the same ProductID
// already exists it is replaced entirely, quantity included: add means
// "set quantity for this product", not "increment".
func (c *Cart) AddItem(item LineItem) {
	for i, existing := range c.items {
		if existing.ProductID == item.ProductID {
			c.items[i] = item
			c.recompute()
			return
		}
	}
	c.items = append(c.items, item)
	c.recompute()
}

// RemoveItem filters the item with the given product ID out of the cart.
// An absent ID is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	filtered := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
	c.recompute()
}

// SetShippingAddress stores the delivery address. The recompute is
// redundant for totals but keeps the mutation contract uniform: every
// mutation leaves the cart fully consistent and ready to persist.
func (c *Cart) SetShippingAddress(addr valueobject.ShippingAddress) {
	c.shippingAddress = addr
	c.recompute()
}

// SetPaymentMethod stores the chosen payment method
func (c *Cart) SetPaymentMethod(method string) {
	c.paymentMethod = method
	c.recompute()
}

// ClearItems empties the line item sequence. Shipping address and payment
// method are untouched. Idempotent.
func (c *Cart) ClearItems() {
	c.items = nil
	c.recompute()
}

func (c *Cart) recompute() {
	c.totals = ComputeTotals(c.items)
}

// Items returns a copy of the line item sequence in display order
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of line items in the cart
func (c *Cart) Len() int {
	return len(c.items)
}

// ShippingAddress returns the stored delivery address (possibly empty)
func (c *Cart) ShippingAddress() valueobject.ShippingAddress {
	return c.shippingAddress
}

// PaymentMethod returns the stored payment method
func (c *Cart) PaymentMethod() string {
	return c.paymentMethod
}

// Totals returns the derived monetary totals as 2-decimal display strings
func (c *Cart) Totals() Totals {
	return c.totals
}
