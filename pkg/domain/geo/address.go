package geo

import "strings"

// DefaultCountry is the country an Address gets when none is specified.
const DefaultCountry = "PL"

// Address is a postal address with optional coordinates.
//
// Every field is optional and an empty string means "absent". Address carries
// no structural invariant; completeness is reported by IsValid.
type Address struct {
	street      string
	city        string
	zipCode     string
	country     string
	coordinates *Coordinates
}

// AddressOption configures optional Address fields.
type AddressOption func(*Address)

// WithCountry overrides the default country.
func WithCountry(country string) AddressOption {
	return func(a *Address) {
		a.country = country
	}
}

// WithoutCountry clears the default country.
func WithoutCountry() AddressOption {
	return func(a *Address) {
		a.country = ""
	}
}

// WithCoordinates attaches coordinates to the address.
func WithCoordinates(c Coordinates) AddressOption {
	return func(a *Address) {
		a.coordinates = &c
	}
}

// NewAddress builds an Address. The country defaults to DefaultCountry.
func NewAddress(street, city, zipCode string, opts ...AddressOption) Address {
	a := Address{
		street:  street,
		city:    city,
		zipCode: zipCode,
		country: DefaultCountry,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) ZipCode() string { return a.zipCode }
func (a Address) Country() string { return a.country }

// Coordinates returns the attached coordinates; ok is false when none were set.
func (a Address) Coordinates() (c Coordinates, ok bool) {
	if a.coordinates == nil {
		return Coordinates{}, false
	}
	return *a.coordinates, true
}

// IsValid reports whether street, city, zip code and country are all present.
// Presence is a raw emptiness check: a whitespace-only field counts as present.
func (a Address) IsValid() bool {
	return a.street != "" && a.city != "" && a.zipCode != "" && a.country != ""
}

// String joins the present fields with ", ". Coordinates are not rendered.
func (a Address) String() string {
	parts := make([]string, 0, 4)
	for _, v := range []string{a.street, a.city, a.zipCode, a.country} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
