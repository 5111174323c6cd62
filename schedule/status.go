package schedule

import (
	"time"

	"openhours-server/models"
)

// CLOSING_SOON_WINDOW is how close to a shift's end the status refines from
// Open to ClosingWithinHour.
const CLOSING_SOON_WINDOW = time.Hour

// StatusEngine computes the operation status of a normalized week at a
// reference instant. It is pure: same (week, now) in, same status out.
type StatusEngine struct {
}

func NewStatusEngine() *StatusEngine {
	return &StatusEngine{}
}

// Evaluate returns the status at now together with the shift containing
// now, if any. Evaluation is total — every input yields exactly one status.
//
// An instant shortly past midnight may belong to the previous day's merged
// overnight shift (e.g. Friday 22:00-02:00 covers Saturday 01:00), so the
// previous day's final shift is consulted before today's own schedule.
func (e *StatusEngine) Evaluate(week models.WeekSchedule, now time.Time) (models.OperationStatus, *models.Shift) {
	today := week.Day(models.DayOfWeekFromTime(now.Weekday()))
	dayStart := startOfDay(now)

	if status, shift, ok := e.overnightSpillover(week, today.Day, dayStart, now); ok {
		return status, shift
	}

	if today.IsClosedAllDay() {
		return models.Closed, nil
	}
	// An all-day shift has no meaningful end boundary, so it never refines
	// to ClosingWithinHour.
	if today.IsOpenAllDay() {
		s := today.Shifts[0]
		return models.Open, &s
	}

	for _, s := range today.Shifts {
		start, end := s.AnchoredInterval(dayStart)
		if now.Before(start) || !now.Before(end) {
			continue
		}
		// First chronological match wins; the non-overlap invariant
		// makes it the only one on well-formed input.
		return refineOpen(end, now), &s
	}
	return models.Closed, nil
}

// overnightSpillover checks whether now still falls inside yesterday's
// merged overnight shift, anchored onto yesterday's date.
func (e *StatusEngine) overnightSpillover(
	week models.WeekSchedule,
	today models.DayOfWeek,
	dayStart time.Time,
	now time.Time,
) (models.OperationStatus, *models.Shift, bool) {
	yesterday := week.Day(today.Prev())
	if yesterday.IsClosedAllDay() {
		return models.Closed, nil, false
	}

	last := yesterday.Shifts[len(yesterday.Shifts)-1]
	if !last.Overnight() {
		return models.Closed, nil, false
	}

	start, end := last.AnchoredInterval(dayStart.AddDate(0, 0, -1))
	if now.Before(start) || !now.Before(end) {
		return models.Closed, nil, false
	}
	return refineOpen(end, now), &last, true
}

func refineOpen(end time.Time, now time.Time) models.OperationStatus {
	if end.Sub(now) <= CLOSING_SOON_WINDOW {
		return models.ClosingWithinHour
	}
	return models.Open
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
