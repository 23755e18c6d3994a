package soc

import (
	"math"
	"time"
)

// FormatDate renders a date the way the feed expects: dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// DiffDays returns the calendar-day difference between two dates, rounding
// partial days up.
func DiffDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
