package valueobject

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShippingAddress(t *testing.T) {
	t.Run("creates address with trimmed fields", func(t *testing.T) {
		addr, err := NewShippingAddress("  123 Main St ", " Springfield", "12345 ", "USA")
		require.NoError(t, err)
		assert.Equal(t, "123 Main St", addr.Address())
		assert.Equal(t, "Springfield", addr.City())
		assert.Equal(t, "12345", addr.PostalCode())
		assert.Equal(t, "USA", addr.Country())
	})

	t.Run("allows partial addresses", func(t *testing.T) {
		addr, err := NewShippingAddress("123 Main St", "", "", "")
		require.NoError(t, err)
		assert.False(t, addr.IsEmpty())
		assert.False(t, addr.IsComplete())
	})

	t.Run("rejects overlong fields", func(t *testing.T) {
		_, err := NewShippingAddress(strings.Repeat("x", 501), "City", "12345", "USA")
		assert.Error(t, err)
	})
}

func TestShippingAddressCompleteness(t *testing.T) {
	t.Run("empty address", func(t *testing.T) {
		addr := EmptyShippingAddress()
		assert.True(t, addr.IsEmpty())
		assert.False(t, addr.IsComplete())
	})

	t.Run("complete address", func(t *testing.T) {
		addr := MustNewShippingAddress("123 Main St", "Springfield", "12345", "USA")
		assert.False(t, addr.IsEmpty())
		assert.True(t, addr.IsComplete())
	})

	t.Run("missing postal code is incomplete", func(t *testing.T) {
		addr := MustNewShippingAddress("123 Main St", "Springfield", "", "USA")
		assert.False(t, addr.IsComplete())
	})
}

func TestShippingAddressString(t *testing.T) {
	addr := MustNewShippingAddress("123 Main St", "Springfield", "12345", "USA")
	assert.Equal(t, "123 Main St, Springfield, 12345, USA", addr.String())
	assert.Equal(t, "", EmptyShippingAddress().String())
}

func TestShippingAddressJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		addr := MustNewShippingAddress("123 Main St", "Springfield", "12345", "USA")

		data, err := json.Marshal(addr)
		require.NoError(t, err)

		var decoded ShippingAddress
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, addr.Equals(decoded))
	})

	t.Run("uses persisted field names", func(t *testing.T) {
		addr := MustNewShippingAddress("123 Main St", "Springfield", "12345", "USA")

		data, err := json.Marshal(addr)
		require.NoError(t, err)

		var raw map[string]string
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Equal(t, "12345", raw["postalCode"])
		assert.Equal(t, "123 Main St", raw["address"])
	})

	t.Run("empty object decodes to empty address", func(t *testing.T) {
		var decoded ShippingAddress
		require.NoError(t, json.Unmarshal([]byte(`{}`), &decoded))
		assert.True(t, decoded.IsEmpty())
	})
}
