package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the canonical YYYY-MM-DD form used to group records.
const DateKeyLayout = "2006-01-02"

// DateKey returns the local calendar day of t.
func DateKey(t time.Time) string {
	return t.In(time.Local).Format(DateKeyLayout)
}

// ParseDateKey normalises user supplied date text. An empty string means
// today. Plain dates are read as local calendar days; RFC 3339 timestamps are
// converted to local time first.
func ParseDateKey(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateKey(now), nil
	}
	if t, err := time.ParseInLocation(DateKeyLayout, s, time.Local); err == nil {
		return DateKey(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateKey(t), nil
	}
	return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}
