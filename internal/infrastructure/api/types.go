package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/core/internal/domain/cart"
	"github.com/storefront/core/internal/domain/shared/valueobject"
)

// Product is a catalog product as returned by the backend
type Product struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	CountInStock int             `json:"countInStock"`
	Rating       float64         `json:"rating"`
	NumReviews   int             `json:"numReviews"`
}

// ProductPage is one page of catalog search results
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}

// LineItem converts the product to a cart line item with the given quantity
func (p Product) LineItem(qty int) cart.LineItem {
	return cart.LineItem{
		ProductID:    p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Brand:        p.Brand,
		Category:     p.Category,
		Description:  p.Description,
		Price:        valueobject.NewMoneyUSD(p.Price),
		CountInStock: p.CountInStock,
		Qty:          qty,
		Rating:       p.Rating,
		NumReviews:   p.NumReviews,
	}
}

// CreateOrderRequest is the order submission payload. It carries the cart
// snapshot fields verbatim, price strings included: the totals the shopper
// reviewed are the totals submitted.
type CreateOrderRequest struct {
	OrderItems      []cart.SnapshotItem         `json:"orderItems"`
	ShippingAddress valueobject.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                      `json:"paymentMethod"`
	ItemsPrice      string                      `json:"itemsPrice"`
	ShippingPrice   string                      `json:"shippingPrice"`
	TaxPrice        string                      `json:"taxPrice"`
	TotalPrice      string                      `json:"totalPrice"`
}

// Order is an order record as returned by the backend
type Order struct {
	ID              string                      `json:"_id"`
	User            string                      `json:"user,omitempty"`
	OrderItems      []cart.SnapshotItem         `json:"orderItems"`
	ShippingAddress valueobject.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                      `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal             `json:"itemsPrice"`
	ShippingPrice   decimal.Decimal             `json:"shippingPrice"`
	TaxPrice        decimal.Decimal             `json:"taxPrice"`
	TotalPrice      decimal.Decimal             `json:"totalPrice"`
	IsPaid          bool                        `json:"isPaid"`
	PaidAt          *time.Time                  `json:"paidAt,omitempty"`
	IsDelivered     bool                        `json:"isDelivered"`
	DeliveredAt     *time.Time                  `json:"deliveredAt,omitempty"`
	CreatedAt       *time.Time                  `json:"createdAt,omitempty"`
}

// Credentials is the sign-in payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account creation payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRecord is a user as returned by the backend. On auth responses the
// token field is populated; admin listings omit it.
type UserRecord struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token,omitempty"`
}

// UpdateUserRequest is the admin user update payload
type UpdateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// UploadResponse is the result of an image upload
type UploadResponse struct {
	Message string `json:"message"`
	Image   string `json:"image"`
}
