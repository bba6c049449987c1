// Package dto holds the transfer shapes shared between query handlers and
// their callers: offset/limit pagination, ordering and paginated collections.
package dto

import (
	"math"

	dErrors "contracts/pkg/domain-errors"
)

// DefaultLimit is the page size used when the caller does not choose one.
const DefaultLimit = 50

// Pagination is an offset/limit window. A nil limit means "no limit".
//
// Invariants:
//   - offset >= 0
//   - limit, when set, >= 0
type Pagination struct {
	offset int
	limit  *int
}

// Limit returns a pointer to n, for passing explicit limits to the constructors.
func Limit(n int) *int {
	return &n
}

// NewPagination validates and builds a Pagination. Pass a nil limit for no limit.
//
// Errors: CodeInvalidInput when offset or limit is negative.
func NewPagination(offset int, limit *int) (Pagination, error) {
	if offset < 0 {
		return Pagination{}, dErrors.Newf(dErrors.CodeInvalidInput, "Offset must not be negative, got %d", offset)
	}
	if limit != nil && *limit < 0 {
		return Pagination{}, dErrors.Newf(dErrors.CodeInvalidInput, "Limit must not be negative, got %d", *limit)
	}
	return Pagination{offset: offset, limit: copyInt(limit)}, nil
}

// FromPage converts a 1-based page number to an offset: (page-1) * limit.
//
// A nil limit contributes 0 to the product, so every page of an unlimited
// window starts at offset 0.
//
// Errors: CodeInvalidInput when page < 1, limit is negative, or the offset
// does not fit in an int.
func FromPage(page int, limit *int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, dErrors.New(dErrors.CodeInvalidInput, "Page must be a positive integer")
	}
	perPage := 0
	if limit != nil {
		perPage = *limit
	}
	if perPage > 0 && page-1 > math.MaxInt/perPage {
		return Pagination{}, dErrors.Newf(dErrors.CodeInvalidInput, "Page %d is out of range for limit %d", page, perPage)
	}
	return NewPagination((page-1)*perPage, limit)
}

// Default is offset 0 with DefaultLimit.
func Default() Pagination {
	return Pagination{limit: Limit(DefaultLimit)}
}

// WithNoLimit is offset 0 without a limit.
func WithNoLimit() Pagination {
	return Pagination{}
}

func (p Pagination) Offset() int { return p.offset }

// Limit returns the limit; ok is false when the window is unlimited.
func (p Pagination) Limit() (limit int, ok bool) {
	if p.limit == nil {
		return 0, false
	}
	return *p.limit, true
}

// HasLimit reports whether the window is bounded.
func (p Pagination) HasLimit() bool {
	return p.limit != nil
}

// Equals compares offset and limit, treating two unlimited windows as equal.
func (p Pagination) Equals(other Pagination) bool {
	l1, ok1 := p.Limit()
	l2, ok2 := other.Limit()
	return p.offset == other.offset && ok1 == ok2 && l1 == l2
}

// Next returns the window following this one. An unlimited window has no next
// window and is returned unchanged.
func (p Pagination) Next() Pagination {
	if p.limit == nil {
		return p
	}
	return Pagination{offset: p.offset + *p.limit, limit: copyInt(p.limit)}
}

// PaginationAware is implemented by queries that carry a pagination window.
type PaginationAware interface {
	Pagination() Pagination
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
