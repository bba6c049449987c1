// Package vehicle models the latest reading reported by a GPS vehicle tracker.
package vehicle

import (
	"context"
	"maps"
	"time"

	"contracts/pkg/domain"
	dErrors "contracts/pkg/domain-errors"
	"contracts/pkg/domain/geo"
	"contracts/pkg/domain/keyvalue"
	"contracts/pkg/model"
)

// Vehicle is an immutable tracker reading for one vehicle.
//
// Invariants:
//   - id is not nil
//   - odometer, speed and fuel level are non-negative
//   - readAt is set
type Vehicle struct {
	id           domain.VehicleID
	displayName  string
	externalID   string
	vin          string
	registration string
	coordinates  *geo.Coordinates
	odometer     int
	speed        int
	fuelLevel    int
	readAt       time.Time
	metadata     map[string]any
}

var (
	_ model.IDAware          = Vehicle{}
	_ model.DisplayNameAware = Vehicle{}
	_ model.ExternalIDAware  = Vehicle{}
)

// Option sets optional reading fields.
type Option func(*Vehicle)

func WithDisplayName(name string) Option {
	return func(v *Vehicle) { v.displayName = name }
}

func WithExternalID(id string) Option {
	return func(v *Vehicle) { v.externalID = id }
}

func WithVIN(vin string) Option {
	return func(v *Vehicle) { v.vin = vin }
}

func WithRegistrationNumber(reg string) Option {
	return func(v *Vehicle) { v.registration = reg }
}

func WithCoordinates(c geo.Coordinates) Option {
	return func(v *Vehicle) { v.coordinates = &c }
}

// WithOdometer sets the odometer reading in kilometres.
func WithOdometer(km int) Option {
	return func(v *Vehicle) { v.odometer = km }
}

// WithSpeed sets the speed in km/h.
func WithSpeed(kmh int) Option {
	return func(v *Vehicle) { v.speed = kmh }
}

// WithFuelLevel sets the fuel level in percent.
func WithFuelLevel(pct int) Option {
	return func(v *Vehicle) { v.fuelLevel = pct }
}

// WithMetadata stores the raw tracker payload. The map is copied.
func WithMetadata(m map[string]any) Option {
	return func(v *Vehicle) { v.metadata = maps.Clone(m) }
}

// New creates a reading for id taken at readAt.
func New(id domain.VehicleID, readAt time.Time, opts ...Option) (Vehicle, error) {
	if id.IsNil() {
		return Vehicle{}, dErrors.New(dErrors.CodeInvalidInput, "Vehicle id is required")
	}
	if readAt.IsZero() {
		return Vehicle{}, dErrors.New(dErrors.CodeInvalidInput, "Vehicle reading date is required")
	}
	v := Vehicle{id: id, readAt: readAt}
	for _, opt := range opts {
		opt(&v)
	}
	switch {
	case v.odometer < 0:
		return Vehicle{}, dErrors.Newf(dErrors.CodeInvalidInput, "Odometer reading must not be negative, got %d", v.odometer)
	case v.speed < 0:
		return Vehicle{}, dErrors.Newf(dErrors.CodeInvalidInput, "Speed must not be negative, got %d", v.speed)
	case v.fuelLevel < 0:
		return Vehicle{}, dErrors.Newf(dErrors.CodeInvalidInput, "Fuel level must not be negative, got %d", v.fuelLevel)
	}
	return v, nil
}

func (v Vehicle) VehicleID() domain.VehicleID { return v.id }

func (v Vehicle) ID() string { return v.id.String() }

// DisplayName falls back to the registration number, then the VIN, then the id.
func (v Vehicle) DisplayName() string {
	for _, s := range []string{v.displayName, v.registration, v.vin} {
		if s != "" {
			return s
		}
	}
	return v.id.String()
}

func (v Vehicle) ExternalID() (string, bool) {
	return v.externalID, v.externalID != ""
}

func (v Vehicle) VIN() (string, bool) {
	return v.vin, v.vin != ""
}

func (v Vehicle) RegistrationNumber() (string, bool) {
	return v.registration, v.registration != ""
}

func (v Vehicle) Coordinates() (geo.Coordinates, bool) {
	if v.coordinates == nil {
		return geo.Coordinates{}, false
	}
	return *v.coordinates, true
}

func (v Vehicle) OdometerReading() int { return v.odometer }
func (v Vehicle) Speed() int           { return v.speed }
func (v Vehicle) FuelLevel() int       { return v.fuelLevel }
func (v Vehicle) Date() time.Time      { return v.readAt }

// Metadata returns a copy of the raw tracker payload.
func (v Vehicle) Metadata() map[string]any {
	return maps.Clone(v.metadata)
}

// Summary lists the reading as labelled pairs for display.
func (v Vehicle) Summary() []keyvalue.KeyValue {
	return []keyvalue.KeyValue{
		keyvalue.MustNew("Vehicle", v.DisplayName()),
		keyvalue.MustNew("Odometer", v.odometer),
		keyvalue.MustNew("Speed", v.speed),
		keyvalue.MustNew("Fuel", v.fuelLevel),
		keyvalue.MustNew("Date", v.readAt.Format(time.DateTime)),
	}
}

// RecentVehiclesData returns the latest reading of every vehicle associated
// with the current client.
type RecentVehiclesData interface {
	FindRecentData(ctx context.Context) ([]Vehicle, error)
}

// NullRepository reports no vehicles. Used when no tracker is configured.
type NullRepository struct{}

var _ RecentVehiclesData = NullRepository{}

func (NullRepository) FindRecentData(context.Context) ([]Vehicle, error) {
	return []Vehicle{}, nil
}
