package locale

import (
	"slices"

	"golang.org/x/text/language"

	dErrors "contracts/pkg/domain-errors"
)

// ParseCountry resolves an upper-case alpha-2 code against the catalog.
//
// Errors: CodeInvalidInput naming the code when it is not in the catalog.
func ParseCountry(code string) (Country, error) {
	c := Country(code)
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "Invalid country code: %s", code)
	}
	return c, nil
}

// Countries returns the whole catalog sorted by code.
func Countries() []Country {
	out := make([]Country, 0, len(countryNames))
	for c := range countryNames {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// IsValid reports whether the code is in the catalog.
func (c Country) IsValid() bool {
	_, ok := countryNames[c]
	return ok
}

func (c Country) Code() string   { return string(c) }
func (c Country) String() string { return string(c) }

// Name returns the English display name, or "" for an unknown code.
func (c Country) Name() string {
	return countryNames[c]
}

// Region returns the CLDR region for the country.
func (c Country) Region() (language.Region, error) {
	r, err := language.ParseRegion(string(c))
	if err != nil {
		return language.Region{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid region "+string(c))
	}
	return r, nil
}
