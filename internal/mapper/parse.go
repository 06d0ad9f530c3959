package mapper

import (
	"strconv"
	"strings"
	"time"
)

// epochMillisThreshold separates second-resolution from millisecond-resolution
// epoch values: anything above it is read as milliseconds.
const epochMillisThreshold = 1_000_000_000_000

// EpochToTime converts an epoch string (seconds or milliseconds) to a UTC
// timestamp. Empty, zero and non-numeric input all map to nil.
func EpochToTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*value), 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	var t time.Time
	if n > epochMillisThreshold {
		t = time.UnixMilli(n).UTC()
	} else {
		t = time.Unix(n, 0).UTC()
	}
	return &t
}

// safeFloat parses a float, returning nil on any failure.
func safeFloat(value *string) *float64 {
	if value == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil {
		return nil
	}
	return &f
}

// safeInt parses an integer, returning nil on any failure.
func safeInt(value *string) *int {
	if value == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*value))
	if err != nil {
		return nil
	}
	return &n
}

// intOrZero parses an integer, returning 0 on any failure.
func intOrZero(value *string) int {
	if n := safeInt(value); n != nil {
		return *n
	}
	return 0
}

// statusOrActive returns the status value, defaulting to ACTIVE.
func statusOrActive(value *string) string {
	if value == nil || *value == "" {
		return "ACTIVE"
	}
	return *value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func strPtr(s string) *string {
	return &s
}
