package util

import (
	"strings"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/constants"
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

// StripZoneAnnotation removes every " (ZONE)" annotation such as " (PST)"
// from a workout timestamp. An unterminated annotation is left in place so the
// strict parse rejects it.
func StripZoneAnnotation(timestamp string) string {
	var b strings.Builder
	rest := timestamp
	for {
		open := strings.Index(rest, " (")
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open+2:], ')')
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])
		rest = rest[open+2+end+1:]
	}
	b.WriteString(rest)
	return b.String()
}

// ParseWorkoutTimestamp parses "YYYY-MM-DD HH:MM" with an optional zone
// annotation. The zone is discarded and the wall clock is kept as-is.
func ParseWorkoutTimestamp(timestamp string) (time.Time, error) {
	return time.Parse(model.TimestampLayout, StripZoneAnnotation(timestamp))
}

// WeekStart returns midnight of the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	// time.Weekday starts at Sunday=0; shift to Monday=0 ... Sunday=6.
	offset := (int(t.Weekday()) + constants.WeekEndOffset) % constants.DaysPerWeek
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekKey derives the grouping key of a raw workout timestamp.
func WeekKey(timestamp string) (time.Time, error) {
	t, err := ParseWorkoutTimestamp(timestamp)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStart(t), nil
}
