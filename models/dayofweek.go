package models

import (
	"fmt"
	"time"
)

// DayOfWeek identifies one of the seven days, ordered Monday (0) to Sunday (6).
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DAYS_IN_WEEK = 7

// dayCodes are the short day codes used by the business hours wire format.
var dayCodes = [DAYS_IN_WEEK]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

var dayNames = [DAYS_IN_WEEK]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ParseDayOfWeek maps a wire code ("MON".."SUN") to its DayOfWeek.
func ParseDayOfWeek(code string) (DayOfWeek, error) {
	for i, c := range dayCodes {
		if c == code {
			return DayOfWeek(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day_of_week code: %q", code)
}

// DayOfWeekFromTime converts a time.Weekday (Sunday = 0) to the
// Monday-first ordering used here.
func DayOfWeekFromTime(w time.Weekday) DayOfWeek {
	return DayOfWeek((int(w) + 6) % DAYS_IN_WEEK)
}

// Next returns the following day, wrapping Sunday back to Monday.
func (d DayOfWeek) Next() DayOfWeek {
	return (d + 1) % DAYS_IN_WEEK
}

// Prev returns the preceding day, wrapping Monday back to Sunday.
func (d DayOfWeek) Prev() DayOfWeek {
	return (d + DAYS_IN_WEEK - 1) % DAYS_IN_WEEK
}

// Code returns the wire code for the day ("MON".."SUN").
func (d DayOfWeek) Code() string {
	return dayCodes[d]
}

func (d DayOfWeek) String() string {
	return dayNames[d]
}
