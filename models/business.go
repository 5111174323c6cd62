package models

import (
	"fmt"
	"sort"
)

// Business is the decoded domain model: a name plus a full week of shifts.
// The week here is the raw (pre-normalization) schedule; callers run it
// through the schedule normalizer before evaluating status.
type Business struct {
	Name string
	Week WeekSchedule
}

// NewBusinessFromDocument validates and decodes a wire document into a
// Business. Hour triples are grouped into their day slot and sorted by
// start time; all seven days are present regardless of input order or gaps.
// Any malformed triple fails the whole document — shifts past this boundary
// are always valid (validation happens here, not in the engine).
func NewBusinessFromDocument(doc *BusinessDocument) (*Business, error) {
	var shiftsByDay [DAYS_IN_WEEK][]Shift

	for _, h := range doc.Hours {
		day, err := ParseDayOfWeek(h.DayOfWeek)
		if err != nil {
			return nil, err
		}
		start, err := ParseTimeOfDay(h.StartLocalTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start time for %s: %w", h.DayOfWeek, err)
		}
		if start.EndOfDay {
			return nil, fmt.Errorf("start time %q on %s: %q is reserved for end of day",
				h.StartLocalTime, h.DayOfWeek, END_OF_DAY_LITERAL)
		}
		end, err := ParseTimeOfDay(h.EndLocalTime)
		if err != nil {
			return nil, fmt.Errorf("invalid end time for %s: %w", h.DayOfWeek, err)
		}
		shiftsByDay[day] = append(shiftsByDay[day], Shift{Start: start, End: end})
	}

	for i := range shiftsByDay {
		shifts := shiftsByDay[i]
		sort.SliceStable(shifts, func(a, b int) bool {
			return shifts[a].Start.Before(shifts[b].Start)
		})
	}

	return &Business{
		Name: doc.LocationName,
		Week: NewWeekSchedule(shiftsByDay),
	}, nil
}
