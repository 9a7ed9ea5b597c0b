package models

import (
	"time"

	"github.com/julianstephens/tracker/internal/constants"
)

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayKey returns the calendar day of t in loc as YYYY-MM-DD. Time of day is discarded.
func DayKey(t time.Time, loc *time.Location) string {
	return StartOfDay(t, loc).Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(constants.DateFormat, day, loc)
}
