package dto

import (
	"iter"
	"slices"
)

// PaginatedCollection is one page of a query result together with the total
// number of matching rows.
type PaginatedCollection[T any] struct {
	items      []T
	count      int
	pagination Pagination
}

// NewPaginatedCollection builds a page. count is the number of matching rows
// across all pages. A nil pagination means the page is unlimited.
func NewPaginatedCollection[T any](items []T, count int, pagination *Pagination) PaginatedCollection[T] {
	p := WithNoLimit()
	if pagination != nil {
		p = *pagination
	}
	return PaginatedCollection[T]{
		items:      slices.Clone(items),
		count:      count,
		pagination: p,
	}
}

// Items returns a copy of the page items.
func (c PaginatedCollection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Count returns the total number of matching rows across all pages.
func (c PaginatedCollection[T]) Count() int { return c.count }

func (c PaginatedCollection[T]) Pagination() Pagination { return c.pagination }

// Len returns the number of items on this page.
func (c PaginatedCollection[T]) Len() int { return len(c.items) }

// All iterates the page items in order.
func (c PaginatedCollection[T]) All() iter.Seq2[int, T] {
	return slices.All(c.items)
}

// HasNextPage reports whether rows remain after this page.
func (c PaginatedCollection[T]) HasNextPage() bool {
	if !c.pagination.HasLimit() {
		return false
	}
	return c.pagination.Offset()+len(c.items) < c.count
}
