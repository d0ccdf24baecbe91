// Package checkout implements the gating between the shipping, payment and
// place-order screens. Each guarded entry point evaluates its precondition
// fresh on every request; nothing is latched, so re-entering a screen always
// re-validates instead of trusting prior navigation.
package checkout

import (
	"github.com/storefront/core/internal/domain/shared/valueobject"
)

// Progress is the checkout gate state derived from the cart
type Progress int

const (
	// NeedsAddress means no complete shipping address has been captured yet
	NeedsAddress Progress = iota
	// NeedsPayment means the address is set but no payment method is chosen
	NeedsPayment
	// Ready means both preconditions hold and the review screen may render
	Ready
)

// String returns the progress state name
func (p Progress) String() string {
	switch p {
	case NeedsAddress:
		return "NEEDS_ADDRESS"
	case NeedsPayment:
		return "NEEDS_PAYMENT"
	case Ready:
		return "READY"
	default:
		return "UNKNOWN"
	}
}

// Screen paths the guard redirects to
const (
	ShippingPath   = "/checkout/shipping"
	PaymentPath    = "/checkout/payment"
	PlaceOrderPath = "/checkout/placeorder"
)

// EvaluateProgress derives the checkout progress from the cart's shipping
// address and payment method. Pure query, no side effects: callers decide
// what to do with the result. Note this does not consider cart contents;
// mutating items after reaching Ready does not re-lock earlier gates.
func EvaluateProgress(addr valueobject.ShippingAddress, paymentMethod string) Progress {
	if !addr.IsComplete() {
		return NeedsAddress
	}
	if paymentMethod == "" {
		return NeedsPayment
	}
	return Ready
}

// RedirectPath returns the screen path a non-ready state must redirect to,
// or "" when the place-order screen may render.
func RedirectPath(p Progress) string {
	switch p {
	case NeedsAddress:
		return ShippingPath
	case NeedsPayment:
		return PaymentPath
	default:
		return ""
	}
}
