// Package geo provides geographic value objects: Coordinates and Address.
//
// Domain purity: no I/O and no lookups. Resolving an address to coordinates is
// the job of a CoordinatesFinder supplied by the caller.
package geo

import (
	"context"
	"strconv"

	dErrors "contracts/pkg/domain-errors"
)

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// Coordinates is a validated latitude/longitude pair.
//
// Invariants:
//   - latitude, when set, is within [-90, 90]
//   - longitude, when set, is within [-180, 180]
//
// Either component may be left unset. Accessors report an unset component as
// 0.0, but String keeps it as an empty token so "unset" and "explicitly zero"
// stay distinguishable in text.
type Coordinates struct {
	latitude  *float64
	longitude *float64
}

// NewCoordinates validates and builds Coordinates. A nil argument leaves that
// component unset.
func NewCoordinates(latitude, longitude *float64) (Coordinates, error) {
	if latitude != nil && !(*latitude >= -maxLatitude && *latitude <= maxLatitude) {
		return Coordinates{}, dErrors.New(dErrors.CodeInvalidInput, "Invalid latitude")
	}
	if longitude != nil && !(*longitude >= -maxLongitude && *longitude <= maxLongitude) {
		return Coordinates{}, dErrors.New(dErrors.CodeInvalidInput, "Invalid longitude")
	}
	return Coordinates{latitude: copyFloat(latitude), longitude: copyFloat(longitude)}, nil
}

// At builds Coordinates with both components set.
func At(latitude, longitude float64) (Coordinates, error) {
	return NewCoordinates(&latitude, &longitude)
}

// MustCoordinates builds Coordinates with both components set, panicking if invalid.
// Use only in tests or for known-valid constants.
func MustCoordinates(latitude, longitude float64) Coordinates {
	c, err := At(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return c
}

// Latitude returns the latitude, or 0.0 when unset.
func (c Coordinates) Latitude() float64 {
	if c.latitude == nil {
		return 0.0
	}
	return *c.latitude
}

// Longitude returns the longitude, or 0.0 when unset.
func (c Coordinates) Longitude() float64 {
	if c.longitude == nil {
		return 0.0
	}
	return *c.longitude
}

// HasLatitude reports whether a latitude was supplied at construction.
func (c Coordinates) HasLatitude() bool { return c.latitude != nil }

// HasLongitude reports whether a longitude was supplied at construction.
func (c Coordinates) HasLongitude() bool { return c.longitude != nil }

// IsZero returns true when neither component was supplied.
func (c Coordinates) IsZero() bool {
	return c.latitude == nil && c.longitude == nil
}

// Equals compares the numeric values; an unset component equals 0.0.
func (c Coordinates) Equals(other Coordinates) bool {
	return c.Latitude() == other.Latitude() && c.Longitude() == other.Longitude()
}

// String renders "lat, lon" from the raw inputs. Unset components render empty,
// so the zero value is ", " while (0, 0) is "0, 0".
func (c Coordinates) String() string {
	return formatRaw(c.latitude) + ", " + formatRaw(c.longitude)
}

func formatRaw(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// CoordinatesFinder resolves an address to coordinates. Implementations live
// outside this package (geocoding services, caches). ok is false when the
// address could not be resolved.
type CoordinatesFinder interface {
	FindCoordinates(ctx context.Context, address Address) (c Coordinates, ok bool, err error)
}
