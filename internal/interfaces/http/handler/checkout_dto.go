package handler

import (
	"github.com/storefront/core/internal/domain/cart"
	"github.com/storefront/core/internal/domain/shared/valueobject"
)

// ShippingScreenView is the shipping step of the checkout flow
type ShippingScreenView struct {
	ShippingAddress valueobject.ShippingAddress `json:"shippingAddress"`
	Progress        string                      `json:"progress"`
}

// PaymentScreenView is the payment step of the checkout flow
type PaymentScreenView struct {
	PaymentMethod string `json:"paymentMethod"`
	Progress      string `json:"progress"`
}

// OrderPreviewView is the review step: the exact snapshot that a
// place-order submission would send
type OrderPreviewView struct {
	cart.Snapshot
	Progress string `json:"progress"`
}
