// Package money provides the Currency catalog and the Money value object.
//
// No conversion and no arithmetic: Money is an immutable amount tagged with a
// currency, compared with a fixed absolute tolerance and formatted using the
// currency's symbol and decimal places.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	dErrors "contracts/pkg/domain-errors"
)

// EqualityTolerance is the absolute difference under which two amounts in the
// same currency are equal. It absorbs binary floating point error; it is a
// business rule, not a relative epsilon.
const EqualityTolerance = 0.001

// English grouping: ',' between thousands and '.' before the fraction.
var printer = message.NewPrinter(language.English)

// Money is a strictly positive amount in a Currency.
//
// Invariants:
//   - amount > 0 and finite
//   - currency is in the catalog
//
// Absence of money is modelled by the caller (e.g. a *Money), never by a zero amount.
type Money struct {
	amount   float64
	currency Currency
}

// New validates and builds Money.
//
// Errors: CodeInvalidInput when the amount is zero, negative or not finite, or
// when the currency is unknown.
func New(amount float64, currency Currency) (Money, error) {
	if !(amount > 0) || math.IsInf(amount, 1) {
		return Money{}, dErrors.Newf(dErrors.CodeInvalidInput, "Money amount must be positive, got %.2f", amount)
	}
	if !currency.IsValid() {
		return Money{}, dErrors.Newf(dErrors.CodeInvalidInput, "Invalid currency code: %s", currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustNew builds Money, panicking if invalid. Use only in tests or for known-valid constants.
func MustNew(amount float64, currency Currency) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() float64    { return m.amount }
func (m Money) Currency() Currency { return m.currency }

// IsZero returns true for the uninitialised value.
func (m Money) IsZero() bool {
	return m.currency == ""
}

// Equals reports same currency and |a-b| < EqualityTolerance.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && math.Abs(m.amount-other.amount) < EqualityTolerance
}

// String renders the symbol followed by the amount with thousands grouping,
// rounded half away from zero to the currency's decimal places:
// "$1,234,567.89", "¥1,000", "د.ب100.500".
func (m Money) String() string {
	places := m.currency.DecimalPlaces()
	amount := roundHalfAway(m.amount, places)
	return m.currency.Symbol() + printer.Sprintf("%v", number.Decimal(amount, number.Scale(places)))
}

// roundHalfAway rounds on the shortest decimal representation of v, so 1.005
// rounds to 1.01 even though its binary value is slightly below it.
func roundHalfAway(v float64, places int) float64 {
	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	if len(frac) <= places {
		return v
	}
	roundUp := frac[places] >= '5'
	kept := []byte(whole + frac[:places])
	if roundUp {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i < 0 {
			kept = append([]byte{'1'}, kept...)
		} else {
			kept[i]++
		}
	}
	text := string(kept)
	if places > 0 {
		split := len(kept) - places
		text = text[:split] + "." + text[split:]
	}
	rounded, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return v
	}
	return math.Copysign(rounded, v)
}
