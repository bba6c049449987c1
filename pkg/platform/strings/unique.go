// Package strings holds small string slice helpers shared across packages.
package strings

import (
	"strings"
)

// UniqueTrimmed trims each value and drops blanks and repeats, keeping the
// first occurrence order. A nil or empty input is returned as is.
func UniqueTrimmed(values []string) []string {
	return unique(values, strings.TrimSpace)
}

func unique(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
