package db

import (
	"fmt"
	"strings"
	"time"
)

// parseSQLiteTime accepts the timestamp shapes go-sqlite3 and strftime produce.
func parseSQLiteTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999Z07:00",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05.999999999", s, time.UTC); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", s)
}
