package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storefront/core/internal/domain/shared/valueobject"
)

func completeAddress() valueobject.ShippingAddress {
	return valueobject.MustNewShippingAddress("123 Main St", "Springfield", "12345", "USA")
}

func TestEvaluateProgress(t *testing.T) {
	t.Run("empty address needs address", func(t *testing.T) {
		p := EvaluateProgress(valueobject.EmptyShippingAddress(), "PayPal")
		assert.Equal(t, NeedsAddress, p)
	})

	t.Run("incomplete address needs address", func(t *testing.T) {
		addr := valueobject.MustNewShippingAddress("123 Main St", "Springfield", "", "")
		p := EvaluateProgress(addr, "PayPal")
		assert.Equal(t, NeedsAddress, p)
	})

	t.Run("address without payment method needs payment", func(t *testing.T) {
		p := EvaluateProgress(completeAddress(), "")
		assert.Equal(t, NeedsPayment, p)
	})

	t.Run("address and payment method ready", func(t *testing.T) {
		p := EvaluateProgress(completeAddress(), "PayPal")
		assert.Equal(t, Ready, p)
	})

	t.Run("idempotent re-evaluation", func(t *testing.T) {
		addr := completeAddress()
		first := EvaluateProgress(addr, "PayPal")
		second := EvaluateProgress(addr, "PayPal")
		assert.Equal(t, first, second)
	})
}

func TestRedirectPath(t *testing.T) {
	assert.Equal(t, ShippingPath, RedirectPath(NeedsAddress))
	assert.Equal(t, PaymentPath, RedirectPath(NeedsPayment))
	assert.Equal(t, "", RedirectPath(Ready))
}

func TestProgressString(t *testing.T) {
	assert.Equal(t, "NEEDS_ADDRESS", NeedsAddress.String())
	assert.Equal(t, "NEEDS_PAYMENT", NeedsPayment.String())
	assert.Equal(t, "READY", Ready.String())
	assert.Equal(t, "UNKNOWN", Progress(99).String())
}
