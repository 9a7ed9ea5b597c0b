package models

import (
	"fmt"
	"strings"
)

const scheduleBits = 0x7F

// Schedule is the set of weekdays a tracker is due on, kept as a 7-bit mask.
// The empty schedule marks an irregular event, which is due on every date.
type Schedule struct {
	mask uint16
}

var (
	Workdays = ScheduleOf(Monday, Tuesday, Wednesday, Thursday, Friday)
	Weekend  = ScheduleOf(Saturday, Sunday)
	Everyday = ScheduleFromMask(scheduleBits)
)

// ScheduleOf builds a schedule from the given days. Invalid days are ignored.
func ScheduleOf(days ...Weekday) Schedule {
	var m uint16
	for _, d := range days {
		m |= d.Bit()
	}
	return Schedule{mask: m}
}

// ScheduleFromMask decodes a stored mask. Bits above bit 6 are discarded.
func ScheduleFromMask(mask uint16) Schedule {
	return Schedule{mask: mask & scheduleBits}
}

func (s Schedule) Mask() uint16 { return s.mask }

func (s Schedule) Contains(w Weekday) bool {
	return w.Valid() && s.mask&w.Bit() != 0
}

// IsIrregular reports whether the schedule has no fixed days.
func (s Schedule) IsIrregular() bool { return s.mask == 0 }

// IsDueOn reports whether a tracker with this schedule is due on w.
func (s Schedule) IsDueOn(w Weekday) bool {
	return s.IsIrregular() || s.Contains(w)
}

// Days returns the scheduled days in Monday-first order.
func (s Schedule) Days() []Weekday {
	var days []Weekday
	for _, d := range AllWeekdays {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s Schedule) String() string {
	switch s.mask {
	case 0:
		return "irregular"
	case Everyday.mask:
		return "everyday"
	case Workdays.mask:
		return "workdays"
	case Weekend.mask:
		return "weekend"
	}
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

// ParseSchedule parses a comma-separated list of weekdays or one of the presets
// "everyday", "workdays", "weekend", "irregular". An empty string is irregular.
func ParseSchedule(s string) (Schedule, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "irregular", "none":
		return Schedule{}, nil
	case "everyday", "daily":
		return Everyday, nil
	case "workdays", "weekdays":
		return Workdays, nil
	case "weekend":
		return Weekend, nil
	}

	var days []Weekday
	for _, part := range strings.Split(s, ",") {
		d, err := ParseWeekday(part)
		if err != nil {
			return Schedule{}, fmt.Errorf("parsing schedule %q: %w", s, err)
		}
		days = append(days, d)
	}
	return ScheduleOf(days...), nil
}

// MarshalJSON encodes the schedule as its mask.
func (s Schedule) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", s.mask)), nil
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var m uint16
	if _, err := fmt.Sscanf(string(data), "%d", &m); err != nil {
		return fmt.Errorf("parsing schedule mask: %w", err)
	}
	*s = ScheduleFromMask(m)
	return nil
}
