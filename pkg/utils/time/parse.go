// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the date shapes news listing backends send for publication dates

package time

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts tried in order; the first successful parse wins
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseFlexible parses a publication date. Numeric input is read as a Unix
// timestamp in seconds or milliseconds. Layouts without a zone are read as UTC.
// Shapes outside the known layouts go through dateparse.
func ParseFlexible(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}

	if t, err := dateparse.ParseIn(value, time.UTC); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// ParseFlexibleTime parses a date string, returning the zero time on failure
func ParseFlexibleTime(value string) time.Time {
	t, _ := ParseFlexible(value)
	return t
}
