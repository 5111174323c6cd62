package models

import (
	"fmt"
	"time"
)

const (
	TIME_OF_DAY_LAYOUT = "15:04:05"

	// END_OF_DAY_LITERAL is reserved by the wire format to mean "end of
	// day / midnight". "00:00:00" is reserved to mean "start of day".
	// Both compare as the canonical midnight instant.
	END_OF_DAY_LITERAL = "24:00:00"

	SECONDS_PER_DAY = 24 * 60 * 60
)

// TimeOfDay is a wall-clock time within a single day, decoupled from any
// calendar date. EndOfDay marks the "24:00:00" sentinel; it keeps the same
// clock reading as midnight but orders after every other time of the day.
type TimeOfDay struct {
	Hour     int
	Minute   int
	Second   int
	EndOfDay bool
}

// ParseTimeOfDay parses an "HH:MM:SS" 24-hour clock string, accepting the
// "24:00:00" end-of-day sentinel.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == END_OF_DAY_LITERAL {
		return TimeOfDay{EndOfDay: true}, nil
	}
	parsed, err := time.Parse(TIME_OF_DAY_LAYOUT, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("malformed time of day %q: %w", s, err)
	}
	return TimeOfDay{
		Hour:   parsed.Hour(),
		Minute: parsed.Minute(),
		Second: parsed.Second(),
	}, nil
}

// DaySeconds returns the day-relative ordering value: seconds since the
// start of the day, with the end-of-day sentinel ordering last.
func (t TimeOfDay) DaySeconds() int {
	if t.EndOfDay {
		return SECONDS_PER_DAY
	}
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// IsMidnight reports whether the value reads as the canonical midnight
// instant, which both "00:00:00" and "24:00:00" map to.
func (t TimeOfDay) IsMidnight() bool {
	return t.EndOfDay || t.DaySeconds() == 0
}

// Before orders two times within the same day; end-of-day sorts last.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.DaySeconds() < other.DaySeconds()
}

// AnchorOn combines the time of day with a concrete calendar day, producing
// an absolute instant. The end-of-day sentinel anchors to the following
// day's midnight.
func (t TimeOfDay) AnchorOn(day time.Time) time.Time {
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	if t.EndOfDay {
		return base.AddDate(0, 0, 1)
	}
	return base.Add(time.Duration(t.DaySeconds()) * time.Second)
}

// HourLabel renders the hour-precision 12-hour display label ("7 PM",
// "12 AM") used in narration and hour listings.
func (t TimeOfDay) HourLabel() string {
	if t.EndOfDay {
		return "12 AM"
	}
	anchor := time.Date(2000, time.January, 1, t.Hour, t.Minute, t.Second, 0, time.UTC)
	return anchor.Format("3 PM")
}

func (t TimeOfDay) String() string {
	if t.EndOfDay {
		return END_OF_DAY_LITERAL
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
