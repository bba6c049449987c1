// Package email provides the Email value object.
//
// An Email is trimmed, syntax-checked and stored lower-cased, so two addresses
// that differ only in case or surrounding whitespace are the same value.
package email

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	dErrors "contracts/pkg/domain-errors"
)

var validate = validator.New()

// Email is a validated, normalised email address.
//
// Invariants:
//   - exactly one '@' with a non-empty local part and domain
//   - no whitespace anywhere
//   - no leading, trailing or consecutive dots in the local part
//   - ASCII only
//   - domain is a host name or a bracketed IP literal
//   - stored lower-cased
type Email struct {
	value string
}

// New validates and normalises an address.
//
// Errors: CodeInvalidInput when the trimmed input is empty or is not a valid
// address. The message quotes the raw input.
func New(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, dErrors.New(dErrors.CodeInvalidInput, "Email address cannot be empty")
	}
	if !isValidAddress(trimmed) {
		return Email{}, dErrors.Newf(dErrors.CodeInvalidInput, "Invalid email address format: %s", raw)
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

// FromString is an alias for New, for symmetry with String.
func FromString(raw string) (Email, error) {
	return New(raw)
}

// MustNew builds an Email, panicking if invalid. Use only in tests or for known-valid constants.
func MustNew(raw string) Email {
	e, err := New(raw)
	if err != nil {
		panic(err)
	}
	return e
}

func isValidAddress(s string) bool {
	if strings.Count(s, "@") != 1 || strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r > unicode.MaxASCII }) {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" || domain == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return isValidLocalPart(local) && isValidDomain(domain)
}

// isValidLocalPart checks the local part against a fixed, known-good domain so
// that domain rules are applied separately.
func isValidLocalPart(local string) bool {
	return validate.Var(local+"@example.com", "email") == nil
}

// isValidDomain accepts host names, including single-label ones such as
// "localhost", and bracketed IP literals. A trailing dot is rejected.
func isValidDomain(domain string) bool {
	if literal, ok := strings.CutPrefix(domain, "["); ok {
		ip, closed := strings.CutSuffix(literal, "]")
		if !closed {
			return false
		}
		ip = strings.TrimPrefix(strings.ToLower(ip), "ipv6:")
		return validate.Var(ip, "ip") == nil
	}
	return validate.Var(domain, "hostname_rfc1123") == nil
}

func (e Email) String() string { return e.value }

// Email returns the normalised address.
func (e Email) Email() string { return e.value }

// IsZero returns true for the uninitialised value.
func (e Email) IsZero() bool { return e.value == "" }

// LocalPart returns everything before the '@'.
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns everything after the '@', or "" when there is none.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// HasDomain reports whether the address belongs to domain, ignoring case.
// Subdomains do not match their parent.
func (e Email) HasDomain(domain string) bool {
	return strings.EqualFold(e.Domain(), domain)
}

// Equals compares the normalised addresses.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
