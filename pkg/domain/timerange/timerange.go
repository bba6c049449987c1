// Package timerange provides TimeRange, an ordered pair of instants, and the
// calendar factories built on it (months, years, quarters).
//
// Factories that depend on "now" come in two forms: CurrentMonth() reads the
// wall clock, CurrentMonthAt(now) takes it from the caller so results are
// deterministic. Calendar boundaries are computed in the location of now.
package timerange

import (
	"time"

	dErrors "contracts/pkg/domain-errors"
)

// Layout renders instants in error messages and String.
const Layout = "2006-01-02 15:04:05"

// parseLayouts are tried in order by FromString.
var parseLayouts = []string{
	Layout,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04",
	time.DateOnly,
}

// TimeRange is a closed interval [start, end].
//
// Invariants:
//   - end is not earlier than start (equal instants are allowed)
type TimeRange struct {
	start time.Time
	end   time.Time
}

// New validates and builds a TimeRange.
//
// Errors: CodeInvariantViolation when end is earlier than start. The message
// carries both instants formatted with Layout.
func New(start, end time.Time) (TimeRange, error) {
	if end.Before(start) {
		return TimeRange{}, dErrors.Newf(dErrors.CodeInvariantViolation,
			"End date (%s) must not be earlier than start date (%s)",
			end.Format(Layout), start.Format(Layout))
	}
	return TimeRange{start: start, end: end}, nil
}

// MustNew builds a TimeRange, panicking if invalid. Use only in tests or for known-valid constants.
func MustNew(start, end time.Time) TimeRange {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// FromString parses both instants in time.Local and builds the range.
// Accepted forms: "2006-01-02 15:04:05", "2006-01-02T15:04:05", RFC 3339,
// "2006-01-02 15:04" and "2006-01-02".
func FromString(start, end string) (TimeRange, error) {
	s, err := parseInstant(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := parseInstant(end)
	if err != nil {
		return TimeRange{}, err
	}
	return New(s, e)
}

func parseInstant(v string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, dErrors.Newf(dErrors.CodeInvalidInput, "Invalid date/time: %s", v)
}

// FromDuration builds [start, start+minutes].
func FromDuration(start time.Time, minutes int) (TimeRange, error) {
	return New(start, start.Add(time.Duration(minutes)*time.Minute))
}

// WeeksBelowDate builds [date - weeks*7 days, date]. Days are calendar days, so
// the wall clock time is kept across DST changes.
func WeeksBelowDate(date time.Time, weeks int) (TimeRange, error) {
	return New(date.AddDate(0, 0, -7*weeks), date)
}

// CurrentMonth is CurrentMonthAt(time.Now()).
func CurrentMonth() TimeRange {
	return CurrentMonthAt(time.Now())
}

// CurrentMonthAt spans the first day of now's month at 00:00 to the last day at
// 23:59. The end carries no seconds.
func CurrentMonthAt(now time.Time) TimeRange {
	y, m, _ := now.Date()
	loc := now.Location()
	return TimeRange{
		start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		end:   time.Date(y, m, daysIn(y, m), 23, 59, 0, 0, loc),
	}
}

// CurrentYear is CurrentYearAt(time.Now(), yearsBack).
func CurrentYear(yearsBack int) (TimeRange, error) {
	return CurrentYearAt(time.Now(), yearsBack)
}

// CurrentYearAt spans Jan 1 00:00:00 of (year - (yearsBack-1)) to Dec 31
// 23:59:59 of now's year. yearsBack of 1 is the current calendar year.
func CurrentYearAt(now time.Time, yearsBack int) (TimeRange, error) {
	return yearsEndingIn(now.Year(), yearsBack, now.Location())
}

// PreviousYear is PreviousYearAt(time.Now(), count).
func PreviousYear(count int) (TimeRange, error) {
	return PreviousYearAt(time.Now(), count)
}

// PreviousYearAt is CurrentYearAt anchored to the year before now.
func PreviousYearAt(now time.Time, count int) (TimeRange, error) {
	return yearsEndingIn(now.Year()-1, count, now.Location())
}

func yearsEndingIn(year, count int, loc *time.Location) (TimeRange, error) {
	return New(
		time.Date(year-(count-1), time.January, 1, 0, 0, 0, 0, loc),
		time.Date(year, time.December, 31, 23, 59, 59, 0, loc),
	)
}

// Quarter spans the first day of the quarter's first month 00:00:00 to the last
// day of its last month 23:59:59, in time.Local.
//
// Errors: CodeInvalidInput when quarter is outside 1..4.
func Quarter(quarter, year int) (TimeRange, error) {
	return quarterIn(quarter, year, time.Local)
}

// CurrentQuarterOfYear is Quarter for the current year.
func CurrentQuarterOfYear(quarter int) (TimeRange, error) {
	return CurrentQuarterOfYearAt(time.Now(), quarter)
}

// CurrentQuarterOfYearAt is Quarter for now's year, in now's location.
func CurrentQuarterOfYearAt(now time.Time, quarter int) (TimeRange, error) {
	return quarterIn(quarter, now.Year(), now.Location())
}

func quarterIn(quarter, year int, loc *time.Location) (TimeRange, error) {
	if quarter < 1 || quarter > 4 {
		return TimeRange{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"Quarter must be between 1 and 4, got %d", quarter)
	}
	first := time.Month(3*(quarter-1) + 1)
	last := first + 2
	return New(
		time.Date(year, first, 1, 0, 0, 0, 0, loc),
		time.Date(year, last, daysIn(year, last), 23, 59, 59, 0, loc),
	)
}

// daysIn relies on time.Date normalising day 0 to the last day of the previous month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (r TimeRange) Start() time.Time { return r.start }
func (r TimeRange) End() time.Time   { return r.end }

// Duration returns end - start.
func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Contains reports whether t lies within the closed interval.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// IsZero returns true for the uninitialised value.
func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Equals compares instants, ignoring location.
func (r TimeRange) Equals(other TimeRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r TimeRange) String() string {
	return r.start.Format(Layout) + " - " + r.end.Format(Layout)
}
