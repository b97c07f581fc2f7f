package utils

import (
	"fmt"
	"time"
)

// ParseDueDate parses a due date that can be either RFC3339 or YYYY-MM-DD.
func ParseDueDate(timeStr string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	return t, nil
}
