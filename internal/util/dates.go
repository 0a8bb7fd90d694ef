package util

import (
	"fmt"
	"time"
)

// DateLayout is the DD/MM/YYYY form both data files use.
const DateLayout = "02/01/2006"

// ParseDate parses a DD/MM/YYYY date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// OlderThanDays reports whether t lies more than the given number of days
// before now.
func OlderThanDays(t, now time.Time, days int) bool {
	return now.Sub(t) > time.Duration(days)*24*time.Hour
}
