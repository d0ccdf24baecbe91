package cart

import (
	"fmt"

	"github.com/storefront/core/internal/domain/shared/valueobject"
)

// SnapshotItem is the wire form of a line item in the persisted snapshot.
// Field names follow the storage layout ("_id", "qty", "countInStock");
// price is a decimal string.
type SnapshotItem struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand,omitempty"`
	Category     string  `json:"category,omitempty"`
	Description  string  `json:"description,omitempty"`
	Price        string  `json:"price"`
	CountInStock int     `json:"countInStock"`
	Qty          int     `json:"qty"`
	Rating       float64 `json:"rating,omitempty"`
	NumReviews   int     `json:"numReviews,omitempty"`
}

// Snapshot is the full serialized cart state written to the local store
// under the cart key after every mutation.
type Snapshot struct {
	CartItems       []SnapshotItem              `json:"cartItems"`
	ShippingAddress valueobject.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                      `json:"paymentMethod"`
	ItemsPrice      string                      `json:"itemsPrice"`
	ShippingPrice   string                      `json:"shippingPrice"`
	TaxPrice        string                      `json:"taxPrice"`
	TotalPrice      string                      `json:"totalPrice"`
}

// DefaultSnapshot is the hardcoded state substituted when no snapshot has
// been persisted yet, or when the persisted one cannot be read.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		CartItems:       []SnapshotItem{},
		ShippingAddress: valueobject.EmptyShippingAddress(),
		PaymentMethod:   DefaultPaymentMethod,
		ItemsPrice:      "0",
		ShippingPrice:   "0",
		TaxPrice:        "0",
		TotalPrice:      "0",
	}
}

// Snapshot captures the full cart state in its wire form
func (c *Cart) Snapshot() Snapshot {
	items := make([]SnapshotItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, SnapshotItem{
			ID:           item.ProductID,
			Name:         item.Name,
			Image:        item.Image,
			Brand:        item.Brand,
			Category:     item.Category,
			Description:  item.Description,
			Price:        item.Price.Amount().String(),
			CountInStock: item.CountInStock,
			Qty:          item.Qty,
			Rating:       item.Rating,
			NumReviews:   item.NumReviews,
		})
	}
	return Snapshot{
		CartItems:       items,
		ShippingAddress: c.shippingAddress,
		PaymentMethod:   c.paymentMethod,
		ItemsPrice:      c.totals.ItemsPrice,
		ShippingPrice:   c.totals.ShippingPrice,
		TaxPrice:        c.totals.TaxPrice,
		TotalPrice:      c.totals.TotalPrice,
	}
}

// FromSnapshot restores a cart from its wire form. Stored totals are kept
// verbatim rather than recomputed, so restoring and re-saving a snapshot is
// lossless; the next mutation recomputes them anyway.
func FromSnapshot(s Snapshot) (*Cart, error) {
	items := make([]LineItem, 0, len(s.CartItems))
	for _, item := range s.CartItems {
		price, err := valueobject.NewMoneyUSDFromString(item.Price)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.ID, err)
		}
		items = append(items, LineItem{
			ProductID:    item.ID,
			Name:         item.Name,
			Image:        item.Image,
			Brand:        item.Brand,
			Category:     item.Category,
			Description:  item.Description,
			Price:        price,
			CountInStock: item.CountInStock,
			Qty:          item.Qty,
			Rating:       item.Rating,
			NumReviews:   item.NumReviews,
		})
	}

	c := &Cart{
		items:           items,
		shippingAddress: s.ShippingAddress,
		paymentMethod:   s.PaymentMethod,
		totals: Totals{
			ItemsPrice:    s.ItemsPrice,
			ShippingPrice: s.ShippingPrice,
			TaxPrice:      s.TaxPrice,
			TotalPrice:    s.TotalPrice,
		},
	}
	return c, nil
}
