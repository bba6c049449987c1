// Package featuretoggle describes which features are available in the current
// scope and whether they may be used.
package featuretoggle

import (
	dErrors "contracts/pkg/domain-errors"
)

// Status is the availability of a feature in the current scope.
//
// Enabled and Disabled mean the feature may be switched in this scope.
// Unpaid means the subscription plan has not been paid.
// Unavailable means the feature is not offered for the organization type.
// QuotaReached means the usage quota is exhausted.
type Status string

const (
	StatusEnabled      Status = "enabled"
	StatusDisabled     Status = "disabled"
	StatusUnpaid       Status = "unpaid"
	StatusUnavailable  Status = "unavailable"
	StatusQuotaReached Status = "quotaReached"
)

var statuses = map[Status]struct{}{
	StatusEnabled:      {},
	StatusDisabled:     {},
	StatusUnpaid:       {},
	StatusUnavailable:  {},
	StatusQuotaReached: {},
}

// ParseStatus validates s against the known statuses. Matching is exact.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "Invalid feature toggle status: %s", s)
	}
	return st, nil
}

func (s Status) IsValid() bool {
	_, ok := statuses[s]
	return ok
}

func (s Status) String() string { return string(s) }
