// Package domain holds identifiers shared by the contract packages.
//
// IDs are distinct named types over uuid.UUID so an EntityID cannot be passed
// where a VehicleID is expected. Construct them from external input with the
// Parse functions; direct conversion bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "contracts/pkg/domain-errors"
)

// EntityID identifies any aggregate exposed through the IDAware contract.
type EntityID uuid.UUID

// VehicleID identifies a tracked vehicle.
type VehicleID uuid.UUID

// NewEntityID returns a random EntityID.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

// NewVehicleID returns a random VehicleID.
func NewVehicleID() VehicleID {
	return VehicleID(uuid.New())
}

// ParseEntityID parses and validates an EntityID.
//
// Errors: CodeInvalidInput when the value is empty, malformed, or the nil UUID.
func ParseEntityID(s string) (EntityID, error) {
	id, err := parseUUID(s, "entity ID")
	return EntityID(id), err
}

// ParseVehicleID parses and validates a VehicleID.
func ParseVehicleID(s string) (VehicleID, error) {
	id, err := parseUUID(s, "vehicle ID")
	return VehicleID(id), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+label)
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return id, nil
}

func (id EntityID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id EntityID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id VehicleID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id VehicleID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
