package schedule

import (
	"openhours-server/models"
)

// Normalizer fuses shifts that logically span midnight. The raw schedule
// represents a late-night shift as two fragments: the earlier day ending at
// "24:00:00" and the next day starting at "00:00:00". Normalize merges each
// such pair into one overnight shift owned by the earlier day and drops the
// consumed fragment from the later day.
type Normalizer struct {
}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize is a pure transform; merge preconditions are evaluated against
// the input week only, and the result is a fresh seven-slot week — each day
// is examined exactly once as "current", so a single pass suffices and the
// transform is idempotent.
func (n *Normalizer) Normalize(week models.WeekSchedule) models.WeekSchedule {
	// mergesIntoNext[d] records that day d's final shift fuses with the
	// first shift of day d+1.
	var mergesIntoNext [models.DAYS_IN_WEEK]bool
	for i := 0; i < models.DAYS_IN_WEEK; i++ {
		mergesIntoNext[i] = n.shouldMerge(week, models.DayOfWeek(i))
	}

	var shiftsByDay [models.DAYS_IN_WEEK][]models.Shift
	for i := 0; i < models.DAYS_IN_WEEK; i++ {
		day := models.DayOfWeek(i)
		shifts := append([]models.Shift(nil), week.Day(day).Shifts...)

		// The first shift was consumed by the previous day's merge.
		if mergesIntoNext[day.Prev()] && len(shifts) > 0 {
			shifts = shifts[1:]
		}

		// The last shift fuses with the next day's first fragment,
		// taken from the original (pre-merge) week.
		if mergesIntoNext[day] && len(shifts) > 0 {
			last := shifts[len(shifts)-1]
			next := week.Day(day.Next()).Shifts[0]
			shifts[len(shifts)-1] = models.Shift{Start: last.Start, End: next.End}
		}

		shiftsByDay[i] = shifts
	}

	return models.NewWeekSchedule(shiftsByDay)
}

// shouldMerge checks the merge precondition for a day: its final shift ends
// at midnight and the following day's first shift starts at midnight. An
// open-all-day next day is left alone — consuming its single degenerate
// midnight-to-midnight shift would erase the open-all-day fact.
func (n *Normalizer) shouldMerge(week models.WeekSchedule, day models.DayOfWeek) bool {
	d := week.Day(day)
	if d.IsClosedAllDay() || d.IsOpenAllDay() {
		return false
	}
	last := d.Shifts[len(d.Shifts)-1]
	if !last.End.IsMidnight() {
		return false
	}

	next := week.Day(day.Next())
	if next.IsClosedAllDay() || next.IsOpenAllDay() {
		return false
	}
	return next.Shifts[0].Start.IsMidnight()
}
