package timeline

import "time"

// NextBusinessDay rolls a weekend date forward to Monday. Weekdays are
// returned as-is.
func NextBusinessDay(t time.Time) time.Time {
	d := Day(t)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// AddBusinessDays starts from NextBusinessDay(t) and steps one calendar day
// at a time in the direction of n until |n| weekdays have been counted.
func AddBusinessDays(t time.Time, n int) time.Time {
	d := NextBusinessDay(t)
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for n > 0 {
		d = d.AddDate(0, 0, step)
		if isWeekday(d) {
			n--
		}
	}
	return d
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
