package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// AddMonths advances t by whole calendar months, clamping the day to the
// target month's length instead of letting it spill into the next month
// the way AddDate does (Jan 31 + 1 month is Feb 29, not Mar 2). Each
// successive offset from the same anchor lands in a distinct month.
func AddMonths(t time.Time, months int) time.Time {
	t = t.UTC()
	year := t.Year()
	month := int(t.Month()) + months
	year += (month - 1) / 12
	month = (month-1)%12 + 1

	day := t.Day()
	lastDay := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MonthKey truncates t to UTC year+month granularity.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// SameYearMonth reports whether two dates fall in the same calendar
// year+month, ignoring the day.
func SameYearMonth(t1, t2 time.Time) bool {
	return MonthKey(t1) == MonthKey(t2)
}

// StartOfMonth returns the first day of t's month, UTC midnight.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
