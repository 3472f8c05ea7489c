package economics

import (
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// DateLayout is the calendar-date format used on the wire and in forms.
const DateLayout = "2006-01-02"

// AddDays returns date plus days, both as YYYY-MM-DD.
// An empty or malformed date yields "" instead of an error.
// Month and year rollover follow the calendar ("2025-01-30" + 5 is "2025-02-04").
func AddDays(date string, days int) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// DaysBetween returns the whole-day difference to - from.
// ok is false when either date is malformed. The result is negative when to
// precedes from.
func DaysBetween(from, to string) (days int, ok bool) {
	a, ok := parseDate(from)
	if !ok {
		return 0, false
	}
	b, ok := parseDate(to)
	if !ok {
		return 0, false
	}
	return daysBetween(a, b), true
}

// FormatDate renders an optional date as YYYY-MM-DD, or "" when nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate is the inverse of FormatDate. "" and malformed input give nil.
func ParseDate(s string) *time.Time {
	t, ok := parseDate(s)
	if !ok {
		return nil
	}
	return &t
}

// parseDate reads the three numeric components itself rather than using
// time.Parse so that out-of-range days normalise instead of failing.
func parseDate(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || p == "" {
			return time.Time{}, false
		}
		n[i] = v
	}
	return time.Date(n[0], time.Month(n[1]), n[2], 0, 0, 0, 0, time.UTC), true
}

// daysBetween counts calendar days between the dates of a and b, ignoring
// time of day and location.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds rather than Sub: a time.Duration saturates near 292 years.
	return int((db.Unix() - da.Unix()) / secondsPerDay)
}
