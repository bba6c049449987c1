package dto

import (
	"strings"

	dErrors "contracts/pkg/domain-errors"
)

// OrderDirection is a sort direction.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// ParseOrderDirection accepts "ASC" or "DESC" in any case.
func ParseOrderDirection(s string) (OrderDirection, error) {
	d := OrderDirection(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "Invalid order direction: %s", s)
	}
	return d, nil
}

// IsValid reports whether the direction is ASC or DESC.
func (d OrderDirection) IsValid() bool {
	return d == OrderAsc || d == OrderDesc
}

func (d OrderDirection) String() string { return string(d) }

// Reverse flips the direction.
func (d OrderDirection) Reverse() OrderDirection {
	if d == OrderDesc {
		return OrderAsc
	}
	return OrderDesc
}

// Undefined marks a value that was not provided, as opposed to one that was
// provided empty. It renders as "N/A".
type Undefined struct{}

func (Undefined) String() string { return "N/A" }
