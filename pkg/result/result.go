// Package result carries the outcome of an application operation: a typed
// status, an optional payload, metadata and an error code for callers that
// render it.
package result

import (
	"errors"
	"iter"
	"maps"

	dErrors "contracts/pkg/domain-errors"
	"contracts/pkg/platform/sentinel"
)

// Type classifies the outcome of an operation.
type Type int

const (
	Success Type = iota
	SuccessNoContent
	Failure
	Accepted
	Duplicated
	NotFound
	Locked
	Gone
	Expired
	SuccessCreated
)

var typeNames = [...]string{
	Success:          "success",
	SuccessNoContent: "success_no_content",
	Failure:          "failure",
	Accepted:         "accepted",
	Duplicated:       "duplicated",
	NotFound:         "not_found",
	Locked:           "locked",
	Gone:             "gone",
	Expired:          "expired",
	SuccessCreated:   "success_created",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// IsSuccessful reports whether t is one of the success variants or Accepted.
func (t Type) IsSuccessful() bool {
	switch t {
	case Success, SuccessNoContent, SuccessCreated, Accepted:
		return true
	default:
		return false
	}
}

// Result is an immutable operation outcome. Builders return modified copies.
type Result[T any] struct {
	typ        Type
	message    string
	data       T
	hasContent bool
	meta       map[string]any
	errorCode  string
}

// New creates an empty result of the given type.
func New[T any](typ Type, message string) Result[T] {
	return Result[T]{typ: typ, message: message}
}

// OK is shorthand for a Success result carrying item.
func OK[T any](item T) Result[T] {
	return New[T](Success, "").With(item)
}

// With returns a copy carrying item as its payload.
func (r Result[T]) With(item T) Result[T] {
	out := r.clone()
	out.data = item
	out.hasContent = true
	return out
}

// WithMeta returns a copy with key set in the metadata.
func (r Result[T]) WithMeta(key string, value any) Result[T] {
	out := r.clone()
	if out.meta == nil {
		out.meta = make(map[string]any, 1)
	}
	out.meta[key] = value
	return out
}

// WithErrorCode returns a copy carrying code.
func (r Result[T]) WithErrorCode(code string) Result[T] {
	out := r.clone()
	out.errorCode = code
	return out
}

func (r Result[T]) Type() Type        { return r.typ }
func (r Result[T]) Message() string   { return r.message }
func (r Result[T]) ErrorCode() string { return r.errorCode }

// Data returns the payload; ok is false when none was set.
func (r Result[T]) Data() (data T, ok bool) {
	return r.data, r.hasContent
}

// Meta returns a copy of the metadata.
func (r Result[T]) Meta() map[string]any {
	return maps.Clone(r.meta)
}

// HasContent reports whether a payload was set.
func (r Result[T]) HasContent() bool {
	return r.hasContent
}

// All yields the payload once, or nothing when no payload was set.
// Use Elements to iterate a slice payload element by element.
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.hasContent {
			yield(r.data)
		}
	}
}

// Elements iterates a slice payload element by element.
func Elements[E any](r Result[[]E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range r.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (r Result[T]) clone() Result[T] {
	r.meta = maps.Clone(r.meta)
	return r
}

// FromError converts err into a result. A nil error yields Success.
// Coded errors keep their code as the error code and sentinel errors map to
// the matching type; anything else is an internal failure.
func FromError[T any](err error) Result[T] {
	if err == nil {
		return New[T](Success, "")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return New[T](typeForCode(de.Code), de.Message).WithErrorCode(string(de.Code))
	}
	for _, m := range sentinelTypes {
		if errors.Is(err, m.err) {
			return New[T](m.typ, err.Error())
		}
	}
	return New[T](Failure, err.Error()).WithErrorCode(string(dErrors.CodeInternal))
}

var sentinelTypes = []struct {
	err error
	typ Type
}{
	{sentinel.ErrNotFound, NotFound},
	{sentinel.ErrConflict, Duplicated},
	{sentinel.ErrExpired, Expired},
	{sentinel.ErrGone, Gone},
	{sentinel.ErrLocked, Locked},
	{sentinel.ErrUnavailable, Failure},
}

func typeForCode(code dErrors.Code) Type {
	switch code {
	case dErrors.CodeNotFound:
		return NotFound
	case dErrors.CodeConflict:
		return Duplicated
	case dErrors.CodeTimeout:
		return Expired
	default:
		return Failure
	}
}
