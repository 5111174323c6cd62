package models

import "time"

// Shift is one contiguous open interval, half-open: Start inclusive, End
// exclusive. Two shifts are equal iff their start and end are equal; a shift
// carries no identity beyond its times.
type Shift struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overnight reports whether the shift spans midnight into the next day.
// Such shifts only exist after normalization merges two midnight-adjacent
// fragments; they read as End at-or-before Start on the day clock.
func (s Shift) Overnight() bool {
	return !s.End.EndOfDay && s.End.DaySeconds() < s.Start.DaySeconds()
}

// AnchoredInterval anchors the shift onto the given calendar day and returns
// its absolute [start, end) instants. An overnight shift's end lands on the
// following day.
func (s Shift) AnchoredInterval(day time.Time) (time.Time, time.Time) {
	start := s.Start.AnchorOn(day)
	end := s.End.AnchorOn(day)
	if s.Overnight() {
		end = s.End.AnchorOn(day.AddDate(0, 0, 1))
	}
	return start, end
}

// ContainsAt reports whether now falls inside the shift when the shift is
// anchored onto the given calendar day.
func (s Shift) ContainsAt(day time.Time, now time.Time) bool {
	start, end := s.AnchoredInterval(day)
	return !now.Before(start) && now.Before(end)
}

// HourRangeLabel renders the shift as an hour range for display,
// e.g. "9 AM-12 PM".
func (s Shift) HourRangeLabel() string {
	return s.Start.HourLabel() + "-" + s.End.HourLabel()
}
