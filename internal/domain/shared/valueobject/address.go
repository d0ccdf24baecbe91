package valueobject

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShippingAddress is a value object representing a delivery address
// It is immutable - use the constructor and accessors
type ShippingAddress struct {
	address    string
	city       string
	postalCode string
	country    string
}

// NewShippingAddress creates a new ShippingAddress. Fields are trimmed but
// not required: checkout completeness is a separate question answered by
// IsComplete, and partially filled addresses are a legitimate persisted state.
func NewShippingAddress(address, city, postalCode, country string) (ShippingAddress, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)
	country = strings.TrimSpace(country)

	if len(address) > 500 {
		return ShippingAddress{}, fmt.Errorf("address cannot exceed 500 characters")
	}
	if len(city) > 100 {
		return ShippingAddress{}, fmt.Errorf("city cannot exceed 100 characters")
	}
	if len(postalCode) > 20 {
		return ShippingAddress{}, fmt.Errorf("postal code cannot exceed 20 characters")
	}
	if len(country) > 100 {
		return ShippingAddress{}, fmt.Errorf("country cannot exceed 100 characters")
	}

	return ShippingAddress{
		address:    address,
		city:       city,
		postalCode: postalCode,
		country:    country,
	}, nil
}

// MustNewShippingAddress creates a new ShippingAddress, panics on error
func MustNewShippingAddress(address, city, postalCode, country string) ShippingAddress {
	addr, err := NewShippingAddress(address, city, postalCode, country)
	if err != nil {
		panic(err)
	}
	return addr
}

// EmptyShippingAddress returns an empty address (no address captured yet)
func EmptyShippingAddress() ShippingAddress {
	return ShippingAddress{}
}

// Address returns the street address line
func (a ShippingAddress) Address() string {
	return a.address
}

// City returns the city
func (a ShippingAddress) City() string {
	return a.city
}

// PostalCode returns the postal code
func (a ShippingAddress) PostalCode() string {
	return a.postalCode
}

// Country returns the country
func (a ShippingAddress) Country() string {
	return a.country
}

// IsEmpty returns true if no field has been captured
func (a ShippingAddress) IsEmpty() bool {
	return a.address == "" && a.city == "" && a.postalCode == "" && a.country == ""
}

// IsComplete returns true if every field is filled in. Checkout gating
// treats anything less as an absent address.
func (a ShippingAddress) IsComplete() bool {
	return a.address != "" && a.city != "" && a.postalCode != "" && a.country != ""
}

// String returns the formatted single-line address
func (a ShippingAddress) String() string {
	if a.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.address, a.city, a.postalCode, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Equals returns true if both addresses are equal
func (a ShippingAddress) Equals(other ShippingAddress) bool {
	return a == other
}

// shippingAddressJSON is used for JSON marshaling/unmarshaling. Field names
// match the persisted cart snapshot layout.
type shippingAddressJSON struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a ShippingAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(shippingAddressJSON{
		Address:    a.address,
		City:       a.city,
		PostalCode: a.postalCode,
		Country:    a.country,
	})
}

// UnmarshalJSON implements json.Unmarshaler. It delegates to the
// NewShippingAddress factory so persisted snapshots go through the same
// normalization as addresses captured from the checkout form.
func (a *ShippingAddress) UnmarshalJSON(data []byte) error {
	var v shippingAddressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	addr, err := NewShippingAddress(v.Address, v.City, v.PostalCode, v.Country)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
