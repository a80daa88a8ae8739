// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire and storage format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeOfDayLayout is the wire and storage format for times of day.
	// Zero-padded HH:MM sorts lexicographically in chronological order,
	// which the window and expiry queries rely on.
	TimeOfDayLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseTimeOfDay parses an HH:MM time-of-day string. The hour must be
// zero-padded; "9:05" would break the lexicographic ordering the queries
// depend on.
func ParseTimeOfDay(s string) (time.Time, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil || t.Format(TimeOfDayLayout) != s {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t, nil
}

// FormatDate renders t as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimeOfDay renders t's clock time as an HH:MM string.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(TimeOfDayLayout)
}

// DayOfWeek returns the weekday of a YYYY-MM-DD date with 0=Sunday .. 6=Saturday.
func DayOfWeek(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// AddMinutesToTime adds a duration in minutes to an HH:MM time of day.
// Results at or past midnight are rejected since appointments may not
// span calendar days.
func AddMinutesToTime(timeOfDay string, minutes int) (string, error) {
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return "", err
	}

	end := t.Add(time.Duration(minutes) * time.Minute)
	if end.Day() != t.Day() {
		return "", fmt.Errorf("time %s plus %d minutes passes midnight", timeOfDay, minutes)
	}

	return FormatTimeOfDay(end), nil
}
