// Package biztime centralizes time handling. All storage and transport use
// UTC; formatting for display is left to clients.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseDateUTC parses a date string (YYYY-MM-DD) as UTC midnight.
func ParseDateUTC(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// FormatRFC3339 formats a UTC time using RFC3339, the serialization format
// used in API responses and audit notes.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
