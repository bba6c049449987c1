package timerange_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "contracts/pkg/domain-errors"
	"contracts/pkg/domain/timerange"
)

type TimeRangeSuite struct {
	suite.Suite
	now time.Time
}

func TestTimeRangeSuite(t *testing.T) {
	suite.Run(t, new(TimeRangeSuite))
}

func (s *TimeRangeSuite) SetupTest() {
	s.now = time.Date(2024, time.February, 15, 12, 30, 45, 0, time.UTC)
}

func (s *TimeRangeSuite) format(t time.Time) string {
	return t.Format(timerange.Layout)
}

func (s *TimeRangeSuite) TestNew() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Run("accepts ordered instants", func() {
		end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
		r, err := timerange.New(start, end)
		s.Require().NoError(err)
		s.Equal(start, r.Start())
		s.Equal(end, r.End())
	})

	s.Run("accepts equal instants", func() {
		r, err := timerange.New(start, start)
		s.Require().NoError(err)
		s.Equal(time.Duration(0), r.Duration())
	})

	s.Run("rejects end before start with both timestamps", func() {
		_, err := timerange.New(start, start.Add(-time.Second))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		s.Equal("End date (2024-12-31 23:59:59) must not be earlier than start date (2025-01-01 00:00:00)", err.Error())
	})

	s.Run("constructing twice yields equal values", func() {
		end := start.Add(time.Hour)
		s.True(timerange.MustNew(start, end).Equals(timerange.MustNew(start, end)))
	})
}

func (s *TimeRangeSuite) TestFromString() {
	s.Run("date and time", func() {
		r, err := timerange.FromString("2025-01-01 00:00:00", "2025-01-31 23:59:59")
		s.Require().NoError(err)
		s.Equal("2025-01-01 00:00:00", s.format(r.Start()))
		s.Equal("2025-01-31 23:59:59", s.format(r.End()))
	})

	s.Run("date only", func() {
		r, err := timerange.FromString("2025-03-15", "2025-03-20")
		s.Require().NoError(err)
		s.Equal("2025-03-15", r.Start().Format(time.DateOnly))
		s.Equal("2025-03-20", r.End().Format(time.DateOnly))
	})

	s.Run("RFC 3339", func() {
		r, err := timerange.FromString("2025-03-15T10:00:00Z", "2025-03-15T11:00:00+01:00")
		s.Require().NoError(err)
		s.Equal(time.Duration(0), r.Duration())
	})

	s.Run("unparsable input", func() {
		_, err := timerange.FromString("yesterday", "2025-03-20")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("reversed strings violate ordering", func() {
		_, err := timerange.FromString("2025-03-20", "2025-03-15")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *TimeRangeSuite) TestFromDuration() {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for minutes, want := range map[int]string{
		30:   "2025-01-01 10:30:00",
		60:   "2025-01-01 11:00:00",
		120:  "2025-01-01 12:00:00",
		1440: "2025-01-02 10:00:00",
	} {
		r, err := timerange.FromDuration(start, minutes)
		s.Require().NoError(err)
		s.Equal(start, r.Start())
		s.Equal(want, s.format(r.End()))
	}

	s.Run("negative duration violates ordering", func() {
		_, err := timerange.FromDuration(start, -1)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *TimeRangeSuite) TestWeeksBelowDate() {
	date := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)

	r1, err := timerange.WeeksBelowDate(date, 1)
	s.Require().NoError(err)
	s.Equal("2025-02-08 12:00:00", s.format(r1.Start()))
	s.Equal(date, r1.End())

	r8, err := timerange.WeeksBelowDate(date, 8)
	s.Require().NoError(err)
	s.Equal("2024-12-21 12:00:00", s.format(r8.Start()))
}

func (s *TimeRangeSuite) TestCurrentMonthAt() {
	r := timerange.CurrentMonthAt(s.now)
	s.Equal("2024-02-01 00:00:00", s.format(r.Start()))
	s.Equal("2024-02-29 23:59:00", s.format(r.End()))

	dec := timerange.CurrentMonthAt(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))
	s.Equal("2025-12-31 23:59:00", s.format(dec.End()))
}

func (s *TimeRangeSuite) TestCurrentMonthUsesWallClock() {
	r := timerange.CurrentMonth()
	now := time.Now()
	s.Equal(1, r.Start().Day())
	s.Equal(now.Month(), r.Start().Month())
	s.Equal(now.Month(), r.End().Month())
}

func (s *TimeRangeSuite) TestCurrentYearAt() {
	s.Run("this year", func() {
		r, err := timerange.CurrentYearAt(s.now, 1)
		s.Require().NoError(err)
		s.Equal("2024-01-01 00:00:00", s.format(r.Start()))
		s.Equal("2024-12-31 23:59:59", s.format(r.End()))
	})

	s.Run("several years back", func() {
		r2, err := timerange.CurrentYearAt(s.now, 2)
		s.Require().NoError(err)
		s.Equal("2023-01-01 00:00:00", s.format(r2.Start()))

		r3, err := timerange.CurrentYearAt(s.now, 3)
		s.Require().NoError(err)
		s.Equal("2022-01-01 00:00:00", s.format(r3.Start()))
		s.Equal("2024-12-31 23:59:59", s.format(r3.End()))
	})

	s.Run("zero years violates ordering", func() {
		_, err := timerange.CurrentYearAt(s.now, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *TimeRangeSuite) TestPreviousYearAt() {
	r, err := timerange.PreviousYearAt(s.now, 1)
	s.Require().NoError(err)
	s.Equal("2023-01-01 00:00:00", s.format(r.Start()))
	s.Equal("2023-12-31 23:59:59", s.format(r.End()))

	r3, err := timerange.PreviousYearAt(s.now, 3)
	s.Require().NoError(err)
	s.Equal("2021-01-01 00:00:00", s.format(r3.Start()))
}

func (s *TimeRangeSuite) TestQuarter() {
	tests := []struct {
		quarter, year int
		start, end    string
	}{
		{1, 2024, "2024-01-01 00:00:00", "2024-03-31 23:59:59"},
		{2, 2024, "2024-04-01 00:00:00", "2024-06-30 23:59:59"},
		{3, 2024, "2024-07-01 00:00:00", "2024-09-30 23:59:59"},
		{4, 2024, "2024-10-01 00:00:00", "2024-12-31 23:59:59"},
		{1, 2025, "2025-01-01 00:00:00", "2025-03-31 23:59:59"},
	}
	for _, tt := range tests {
		r, err := timerange.Quarter(tt.quarter, tt.year)
		s.Require().NoError(err)
		s.Equal(tt.start, s.format(r.Start()))
		s.Equal(tt.end, s.format(r.End()))
	}

	s.Run("rejects out of range quarters", func() {
		for _, q := range []int{0, 5, -1} {
			_, err := timerange.Quarter(q, 2025)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
			s.Equal("Quarter must be between 1 and 4, got "+strconv.Itoa(q), err.Error())
		}
	})

	s.Run("current year", func() {
		r, err := timerange.CurrentQuarterOfYearAt(s.now, 1)
		s.Require().NoError(err)
		s.Equal("2024-01-01 00:00:00", s.format(r.Start()))
	})
}

func (s *TimeRangeSuite) TestContains() {
	r := timerange.MustNew(s.now, s.now.Add(time.Hour))
	s.True(r.Contains(s.now))
	s.True(r.Contains(s.now.Add(time.Hour)))
	s.False(r.Contains(s.now.Add(-time.Nanosecond)))
	s.Equal("2024-02-15 12:30:45 - 2024-02-15 13:30:45", r.String())
}
