package handler

import "github.com/storefront/core/internal/domain/cart"

// AddCartItemRequest adds a product to the cart at the given quantity.
// Adding a product already in the cart replaces its line entirely.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

// ShippingAddressRequest sets the shipping address on the cart
type ShippingAddressRequest struct {
	Address    string `json:"address" binding:"required,max=500"`
	City       string `json:"city" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
	Country    string `json:"country" binding:"required,max=100"`
}

// PaymentMethodRequest sets the payment method on the cart
type PaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// CartView is the cart state served to the UI: the persisted snapshot
// plus the checkout progress derived from it
type CartView struct {
	cart.Snapshot
	Progress     string `json:"progress"`
	RedirectPath string `json:"redirectPath"`
}
