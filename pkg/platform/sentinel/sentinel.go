// Package sentinel holds the errors adapters return for facts about stored
// resources. Adapters return them, optionally wrapped, and result.FromError
// turns them into result types.
//
// They describe resource state, not bad input; input problems use
// pkg/domain-errors.
package sentinel

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrExpired  = errors.New("expired")
	// ErrGone marks a resource that existed and was removed.
	ErrGone = errors.New("gone")
	// ErrLocked marks a resource frozen against changes.
	ErrLocked      = errors.New("locked")
	ErrUnavailable = errors.New("unavailable")
)
