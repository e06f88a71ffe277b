package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format used across the dashboard.
const DateLayout = "2006-01-02"

// timestampLayouts are tried in order when parsing tracker timestamps.
// The tracker emits "2024-01-10T12:34:56.000+0700"; RFC3339 covers the rest.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339Nano,
	time.RFC3339,
}

// Calendar converts between calendar-date strings and absolute times
// in a fixed timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string,
// e.g. "Asia/Bangkok". An empty timezone means local time.
func NewCalendar(timezone string) (*Calendar, error) {
	if timezone == "" {
		return &Calendar{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// ParseDate parses a YYYY-MM-DD string as midnight in the calendar's timezone.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	t, err := time.ParseInLocation(DateLayout, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD in the calendar's timezone.
func (c *Calendar) FormatDate(t time.Time) string {
	return t.In(c.location).Format(DateLayout)
}

// ParseTimestamp parses a full tracker timestamp.
func (c *Calendar) ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp string")
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, lastErr)
}

// StartOfDay returns midnight at the start of the given day.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59.999 of the given day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}
