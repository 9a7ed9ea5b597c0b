package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week numbered Monday=1 … Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays lists the days in Monday-first order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ErrInvalidCalendarWeekday is returned for calendar values outside 1..7.
var ErrInvalidCalendarWeekday = errors.New("calendar weekday out of range")

var weekdayNames = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

func (w Weekday) Valid() bool { return w >= Monday && w <= Sunday }

// Bit returns the schedule mask bit for w (bit 0 = Monday … bit 6 = Sunday).
func (w Weekday) Bit() uint16 {
	if !w.Valid() {
		return 0
	}
	return 1 << uint(w-1)
}

// WeekdayFromCalendar converts a Sunday-first calendar number (1=Sunday … 7=Saturday)
// to a Weekday. Values outside 1..7 fall back to Monday and return
// ErrInvalidCalendarWeekday so the caller can see the fallback happened.
func WeekdayFromCalendar(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return Monday, fmt.Errorf("%w: %d", ErrInvalidCalendarWeekday, n)
	}
	if n == 1 {
		return Sunday, nil
	}
	return Weekday(n - 1), nil
}

// WeekdayFromTime returns the weekday of t in t's own location.
func WeekdayFromTime(t time.Time) Weekday {
	// time.Weekday is Sunday=0, the calendar convention is Sunday=1
	w, _ := WeekdayFromCalendar(int(t.Weekday()) + 1)
	return w
}

// ParseWeekday accepts short or long English names, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return Monday, nil
	case "tue", "tues", "tuesday":
		return Tuesday, nil
	case "wed", "wednesday":
		return Wednesday, nil
	case "thu", "thurs", "thursday":
		return Thursday, nil
	case "fri", "friday":
		return Friday, nil
	case "sat", "saturday":
		return Saturday, nil
	case "sun", "sunday":
		return Sunday, nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}
