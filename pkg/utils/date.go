package utils

import (
	"fmt"
	"strings"
	"time"
)

// isoLayouts are the timestamp shapes accepted from candle source files.
// Fractional seconds are optional in every layout.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseISOTimestamp parses an ISO-8601 timestamp string into a UTC time.
// A trailing "Z" is normalized to a "+00:00" offset and timestamps without
// any zone information are assumed to be UTC.
func ParseISOTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}

// EpochToTimeUTC converts epoch seconds to a UTC time.
// Non-positive values have no usable publication time and map to nil.
func EpochToTimeUTC(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}

// PrettyDate formats a time for human-readable notifications.
func PrettyDate(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
