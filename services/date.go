package services

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form used by forms, import and export
const DateLayout = "2006-01-02"

// TimestampLayout is how created_at/updated_at are rendered on export
const TimestampLayout = "2006-01-02 15:04:05"

// ParseDate parses a date string in the canonical YYYY-MM-DD form
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// FormatDate renders an optional date as YYYY-MM-DD, or "" when unset
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
