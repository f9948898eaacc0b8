package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseIntOrDefault parses loose client input; absent or malformed
// values fall back instead of failing the request.
func ParseIntOrDefault(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func ParseFloatOrDefault(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// ParseISODate accepts 2006-01-02 and full RFC3339 stamps, keeping only
// the calendar day in UTC.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
