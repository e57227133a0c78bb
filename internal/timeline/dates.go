package timeline

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for input and display.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

var (
	// ErrInvalidDateRange is matched by errors.Is for any *InvalidDateRangeError.
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrNegativeDuration = errors.New("duration must be >= 0")
)

// InvalidDateRangeError reports a range whose end precedes its start.
type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s is before start %s",
		e.End.Format(DateLayout), e.Start.Format(DateLayout))
}

func (e *InvalidDateRangeError) Is(target error) bool {
	return target == ErrInvalidDateRange
}

// Day returns midnight UTC of t's calendar date. The calendar date is read in
// t's own location, so a local "now" maps to the local day, not the UTC one.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// AddDays shifts the calendar date of t by n days (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / day)
}

// EndDate returns start plus durationDays calendar days.
func EndDate(start time.Time, durationDays int) (time.Time, error) {
	if durationDays < 0 {
		return time.Time{}, fmt.Errorf("%w: got %d", ErrNegativeDuration, durationDays)
	}
	return AddDays(start, durationDays), nil
}

// Duration returns the number of calendar days from start to end. Both are
// reduced to their calendar date first, so time of day and zone offset do
// not change the result. An end before start is a caller error and is
// returned as *InvalidDateRangeError rather than clamped.
func Duration(start, end time.Time) (int, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return 0, &InvalidDateRangeError{Start: start, End: end}
	}
	return DaysBetween(start, end), nil
}

func minDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
