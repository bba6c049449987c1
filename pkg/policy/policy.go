// Package policy checks whether an intended action on an object is allowed.
package policy

import (
	"errors"

	dErrors "contracts/pkg/domain-errors"
)

// Intention is the action a caller is about to perform.
type Intention string

const (
	IntentionCreate Intention = "create"
	IntentionUpdate Intention = "update"
	IntentionRemove Intention = "remove"
)

// ParseIntention validates s against the known intentions.
func ParseIntention(s string) (Intention, error) {
	i := Intention(s)
	switch i {
	case IntentionCreate, IntentionUpdate, IntentionRemove:
		return i, nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "Invalid policy intention: %s", s)
}

func (i Intention) String() string { return string(i) }

// Specification decides whether intention is allowed on obj. It returns nil
// when allowed and an error, usually an *Error, when not.
type Specification[T any] interface {
	IsSatisfiedBy(intention Intention, obj T) error
}

// SpecificationFunc adapts a function to Specification.
type SpecificationFunc[T any] func(intention Intention, obj T) error

func (f SpecificationFunc[T]) IsSatisfiedBy(intention Intention, obj T) error {
	return f(intention, obj)
}

// Satisfied reports whether spec allows intention on obj, discarding the reason.
func Satisfied[T any](spec Specification[T], intention Intention, obj T) bool {
	return spec.IsSatisfiedBy(intention, obj) == nil
}

// AllOf is satisfied when every spec is; it returns the first failure.
func AllOf[T any](specs ...Specification[T]) Specification[T] {
	return SpecificationFunc[T](func(intention Intention, obj T) error {
		for _, s := range specs {
			if err := s.IsSatisfiedBy(intention, obj); err != nil {
				return err
			}
		}
		return nil
	})
}

// Error is a policy rejection carrying a typed cause. Its chain contains a
// CodeForbidden domain error, so dErrors.HasCode works on it.
type Error[C ~string] struct {
	Cause C
	err   error
}

// NewError creates a rejection with the given cause and message.
func NewError[C ~string](cause C, msg string) *Error[C] {
	return &Error[C]{Cause: cause, err: dErrors.New(dErrors.CodeForbidden, msg)}
}

func (e *Error[C]) Error() string { return e.err.Error() }

func (e *Error[C]) Unwrap() error { return e.err }

// CauseOf extracts the cause of a policy rejection of cause type C.
func CauseOf[C ~string](err error) (C, bool) {
	var pe *Error[C]
	if errors.As(err, &pe) {
		return pe.Cause, true
	}
	var zero C
	return zero, false
}
