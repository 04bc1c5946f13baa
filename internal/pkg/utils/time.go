package utils

import (
	"fmt"
	"time"
)

const slotDateLayout = "2006-01-02"

// ShortTime truncates an HH:MM:SS time string to HH:MM.
func ShortTime(t string) string {
	if len(t) <= 5 {
		return t
	}
	return t[:5]
}

// TimeRange renders "HH:MM - HH:MM" from two HH:MM:SS strings.
func TimeRange(start, end string) string {
	return fmt.Sprintf("%s - %s", ShortTime(start), ShortTime(end))
}

// FormatDateHeading turns a YYYY-MM-DD date into a readable heading,
// e.g. "Monday, 1 January 2024". Unparseable input is returned as-is.
func FormatDateHeading(date string) string {
	parsed, err := time.Parse(slotDateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, 2 January 2006")
}
