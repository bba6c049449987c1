// Package locale provides the Country catalog and the Locale value object.
package locale

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	dErrors "contracts/pkg/domain-errors"
)

var languageCodePattern = regexp.MustCompile(`^[a-z]{2}$`)

// Locale is an ISO 639-1 language code with an optional country.
//
// Invariants:
//   - languageCode matches ^[a-z]{2}$
//   - country, when present, is in the catalog
//
// Text forms: "en", "en_US" (underscore) and "en-US" (dash).
type Locale struct {
	languageCode string
	country      Country
}

// NewLocale validates and builds a Locale. Pass "" for no country.
//
// Errors: CodeInvalidInput when the language code is not two lower-case letters
// or the country is not in the catalog.
func NewLocale(languageCode string, country Country) (Locale, error) {
	if !languageCodePattern.MatchString(languageCode) {
		return Locale{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"Language code must be a two-letter ISO 639-1 code, got: %s", languageCode)
	}
	if country != "" && !country.IsValid() {
		return Locale{}, dErrors.Newf(dErrors.CodeInvalidInput, "Invalid country code: %s", country)
	}
	return Locale{languageCode: languageCode, country: country}, nil
}

// MustLocale builds a Locale, panicking if invalid.
func MustLocale(languageCode string, country Country) Locale {
	l, err := NewLocale(languageCode, country)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLocale parses "en" or "en_US". The language part is lower-cased and the
// country part upper-cased before validation.
func ParseLocale(s string) (Locale, error) {
	parts := strings.Split(s, "_")
	if len(parts) > 2 {
		return Locale{}, dErrors.Newf(dErrors.CodeInvalidInput,
			`Invalid locale format: %s. Expected format: "en" or "en_US"`, s)
	}

	var country Country
	if len(parts) == 2 {
		c, err := ParseCountry(strings.ToUpper(parts[1]))
		if err != nil {
			return Locale{}, err
		}
		country = c
	}
	return NewLocale(strings.ToLower(parts[0]), country)
}

func (l Locale) LanguageCode() string { return l.languageCode }

// Country returns the country; ok is false when the locale has none.
func (l Locale) Country() (c Country, ok bool) {
	return l.country, l.country != ""
}

// IsZero returns true for the uninitialised value.
func (l Locale) IsZero() bool {
	return l.languageCode == ""
}

func (l Locale) String() string {
	return l.UnderscoreFormat()
}

// UnderscoreFormat renders "en" or "en_US".
func (l Locale) UnderscoreFormat() string {
	return l.join("_")
}

// DashFormat renders "en" or "en-US".
func (l Locale) DashFormat() string {
	return l.join("-")
}

func (l Locale) join(sep string) string {
	if l.country == "" {
		return l.languageCode
	}
	return l.languageCode + sep + string(l.country)
}

// Tag converts the locale to a BCP 47 tag for use with golang.org/x/text.
// Well-formed codes unknown to CLDR are reported as errors.
func (l Locale) Tag() (language.Tag, error) {
	tag, err := language.Parse(l.DashFormat())
	if err != nil {
		return language.Und, fmt.Errorf("locale %s: %w", l, err)
	}
	return tag, nil
}
