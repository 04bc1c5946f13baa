package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortTime(t *testing.T) {
	t.Run("Truncates seconds", func(t *testing.T) {
		assert.Equal(t, "09:00", ShortTime("09:00:00"))
		assert.Equal(t, "14:30", ShortTime("14:30:59"))
	})

	t.Run("Keeps already short values", func(t *testing.T) {
		assert.Equal(t, "09:00", ShortTime("09:00"))
		assert.Equal(t, "9:00", ShortTime("9:00"))
	})
}

func TestTimeRange(t *testing.T) {
	assert.Equal(t, "09:00 - 09:30", TimeRange("09:00:00", "09:30:00"))
}

func TestFormatDateHeading(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		assert.Equal(t, "Monday, 2 March 2026", FormatDateHeading("2026-03-02"))
	})

	t.Run("Unparseable date falls back to the raw value", func(t *testing.T) {
		assert.Equal(t, "not-a-date", FormatDateHeading("not-a-date"))
	})
}
