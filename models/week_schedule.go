package models

// WeekSchedule is exactly seven DaySchedules, indexed by DayOfWeek ordinal.
// All seven slots are always present; the week is a value and is never
// mutated in place after construction — normalization builds a fresh one.
type WeekSchedule struct {
	days [DAYS_IN_WEEK]DaySchedule
}

// NewWeekSchedule builds a week from seven per-day shift lists indexed by
// DayOfWeek ordinal.
func NewWeekSchedule(shiftsByDay [DAYS_IN_WEEK][]Shift) WeekSchedule {
	var w WeekSchedule
	for i := range w.days {
		w.days[i] = DaySchedule{Day: DayOfWeek(i), Shifts: shiftsByDay[i]}
	}
	return w
}

// Day returns the schedule for the given day of the week.
func (w WeekSchedule) Day(d DayOfWeek) DaySchedule {
	return w.days[d]
}

// Days returns the seven day schedules in Monday..Sunday order.
func (w WeekSchedule) Days() []DaySchedule {
	out := make([]DaySchedule, DAYS_IN_WEEK)
	copy(out, w.days[:])
	return out
}
