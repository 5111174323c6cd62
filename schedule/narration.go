package schedule

import (
	"log"
	"time"

	"openhours-server/config"
	"openhours-server/models"
)

// NarrationEngine produces the display string describing the next
// open/close transition, given the status engine's output for the same
// reference instant.
type NarrationEngine struct {
}

func NewNarrationEngine() *NarrationEngine {
	return &NarrationEngine{}
}

// Describe renders one of:
//   - "Open until {hour}" while open (current is the active shift);
//   - "Open 24hrs" when today is the degenerate all-day shift, whose
//     identical start/end instants make an hour label meaningless;
//   - "Opens again at {hour}" when closed with another shift later today;
//   - "Opens {day} {hour}" when closed for the rest of today;
//   - "Closed indefinitely" when every day of the week is closed.
func (e *NarrationEngine) Describe(
	week models.WeekSchedule,
	status models.OperationStatus,
	current *models.Shift,
	now time.Time,
) string {
	today := week.Day(models.DayOfWeekFromTime(now.Weekday()))

	if status.IsOpen() {
		if current == nil {
			// Status says open but no shift resolved: a status or
			// normalization bug, not a user-facing condition.
			log.Printf("[NarrationEngine] open status with no current shift at %v", now)
			return config.NARRATION_FALLBACK
		}
		if current.Start.IsMidnight() && current.End.IsMidnight() {
			return config.LABEL_OPEN_24HRS
		}
		return config.NARRATION_OPEN_UNTIL + " " + current.End.HourLabel()
	}

	if next := nextShiftToday(today, now); next != nil {
		return config.NARRATION_OPENS_AGAIN_AT + " " + next.Start.HourLabel()
	}

	// Walk forward from tomorrow, wrapping through the week. Bounded at
	// seven steps: a week closed every day is a valid terminal case, not
	// an infinite loop.
	day := today.Day
	for step := 0; step < models.DAYS_IN_WEEK; step++ {
		day = day.Next()
		next := week.Day(day)
		if next.IsClosedAllDay() {
			continue
		}
		return config.NARRATION_OPENS + " " + day.String() + " " + next.Shifts[0].Start.HourLabel()
	}
	return config.NARRATION_CLOSED_ALL_WEEK
}

// nextShiftToday returns today's earliest shift starting strictly after
// now, or nil.
func nextShiftToday(today models.DaySchedule, now time.Time) *models.Shift {
	nowSecs := now.Hour()*3600 + now.Minute()*60 + now.Second()
	var next *models.Shift
	for _, s := range today.Shifts {
		if s.Start.DaySeconds() <= nowSecs {
			continue
		}
		if next == nil || s.Start.Before(next.Start) {
			shift := s
			next = &shift
		}
	}
	return next
}
