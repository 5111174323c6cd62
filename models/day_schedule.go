package models

import "time"

// DaySchedule holds one calendar day's shifts, sorted ascending by start
// time with no overlaps. A day with no shifts is closed all day.
type DaySchedule struct {
	Day    DayOfWeek
	Shifts []Shift
}

// IsClosedAllDay reports whether the business never opens on this day.
func (d DaySchedule) IsClosedAllDay() bool {
	return len(d.Shifts) == 0
}

// IsOpenAllDay reports whether the day is a single midnight-to-midnight
// shift. Multiple shifts mean the day has closed stretches, so only the
// single-shift case qualifies.
func (d DaySchedule) IsOpenAllDay() bool {
	if len(d.Shifts) != 1 {
		return false
	}
	return d.Shifts[0].Start.IsMidnight() && d.Shifts[0].End.IsMidnight()
}

// CurrentShift returns the shift containing now, anchored onto now's
// calendar day, or nil when no shift contains it. The open-all-day shift is
// returned for any instant of the day even though its start and end read as
// the same midnight instant.
func (d DaySchedule) CurrentShift(now time.Time) *Shift {
	if d.IsClosedAllDay() {
		return nil
	}
	if d.IsOpenAllDay() {
		s := d.Shifts[0]
		return &s
	}
	for _, s := range d.Shifts {
		if s.ContainsAt(now, now) {
			shift := s
			return &shift
		}
	}
	return nil
}

// ContainsInstant reports whether some shift of the day contains now.
func (d DaySchedule) ContainsInstant(now time.Time) bool {
	return d.CurrentShift(now) != nil
}
