package models

import (
	"fmt"
	"strings"
	"time"
)

// timestampFormats covers the CSV exports (no timezone) and the RFC3339 text
// database/sql produces when a timestamp column is scanned into a string.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseTimestamp parses a trip timestamp. Values without timezone
// information are taken as wall-clock times and kept in UTC so the derived
// hour is never shifted.
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	var parseErr error
	for _, format := range timestampFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
		parseErr = err
	}

	return time.Time{}, fmt.Errorf("unable to parse time %q: %w", s, parseErr)
}
