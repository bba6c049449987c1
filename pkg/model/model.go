// Package model defines the capability interfaces entities implement so that
// generic code (geocoding, listing, removal checks) can handle them uniformly.
package model

import (
	"time"

	"contracts/pkg/domain/geo"
)

type IDAware interface {
	ID() string
}

// ExternalIDAware entities may be linked to an object in another system.
// ok is false when there is no such link.
type ExternalIDAware interface {
	ExternalID() (id string, ok bool)
}

type NameAware interface {
	Name() (name string, ok bool)
}

// DisplayNameAware entities always produce a name fit for display, deriving
// one from other fields when no explicit name is set.
type DisplayNameAware interface {
	DisplayName() string
}

type AddressAware interface {
	Address() (geo.Address, bool)
	SetAddress(geo.Address)
}

type Removable interface {
	IsRemovable() bool
}

// Lockable entities can be frozen once their locking conditions are met.
type Lockable interface {
	IsLocked() bool
	Lock()
}

type Cancelable interface {
	IsCanceled() bool
	IsCancelable() bool
	Cancel()
}

type TimestampAware interface {
	CreatedAt() time.Time
	UpdatedAt() time.Time
	Touch(now time.Time)
}
