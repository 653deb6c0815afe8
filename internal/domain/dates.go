package domain

import (
	"fmt"
	"time"
)

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the absolute number of calendar days between a and b.
func DaysBetween(a, b time.Time) int {
	days := int(DateOf(a).Sub(DateOf(b)).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock reads an "HH:MM" time of day.
func ParseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
	}
	return t.Hour(), t.Minute(), nil
}
