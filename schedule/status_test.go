package schedule

import (
	"testing"
	"time"

	"openhours-server/models"
)

// 2024-01-15 is a Monday; the 19th and 20th are Friday and Saturday.
func instant(day, hour, min int) time.Time {
	return time.Date(2024, time.January, day, hour, min, 0, 0, time.UTC)
}

func weekdayWeek(t *testing.T) models.WeekSchedule {
	return weekWith(map[models.DayOfWeek][]models.Shift{
		models.Monday: {
			mustShift(t, "09:00:00", "12:00:00"),
			mustShift(t, "13:00:00", "17:00:00"),
		},
	})
}

func TestEvaluate_OpenInsideShift(t *testing.T) {
	engine := NewStatusEngine()

	status, current := engine.Evaluate(weekdayWeek(t), instant(15, 11, 30))

	if status != models.Open {
		t.Errorf("Expected Open, got %v", status)
	}
	if current == nil || current.End.Hour != 12 {
		t.Errorf("Expected the morning shift as current, got %v", current)
	}
}

func TestEvaluate_ClosingWithinHour(t *testing.T) {
	engine := NewStatusEngine()

	status, current := engine.Evaluate(weekdayWeek(t), instant(15, 16, 35))

	if status != models.ClosingWithinHour {
		t.Errorf("Expected ClosingWithinHour, got %v", status)
	}
	if current == nil || current.End.Hour != 17 {
		t.Errorf("Expected the afternoon shift as current, got %v", current)
	}
}

func TestEvaluate_ClosedOutsideShifts(t *testing.T) {
	engine := NewStatusEngine()
	week := weekdayWeek(t)

	tests := []struct {
		name string
		now  time.Time
	}{
		{"BeforeOpening", instant(15, 8, 0)},
		{"BetweenShifts", instant(15, 12, 30)},
		{"AfterClosing", instant(15, 18, 0)},
		{"ExactlyAtEnd", instant(15, 12, 0)}, // end is exclusive
		{"ClosedAllDay", instant(16, 12, 0)}, // Tuesday has no shifts
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			status, current := engine.Evaluate(week, test.now)
			if status != models.Closed {
				t.Errorf("Expected Closed, got %v", status)
			}
			if current != nil {
				t.Errorf("Expected no current shift, got %v", current)
			}
		})
	}
}

func TestEvaluate_StartIsInclusive(t *testing.T) {
	engine := NewStatusEngine()

	status, _ := engine.Evaluate(weekdayWeek(t), instant(15, 9, 0))

	if status != models.Open {
		t.Errorf("Expected Open at shift start, got %v", status)
	}
}

func TestEvaluate_OvernightSpillover(t *testing.T) {
	// Friday 22:00-24:00 + Saturday 00:00-02:00, normalized into one
	// overnight shift owned by Friday. Saturday 01:00 must resolve to it
	// even though Saturday's own schedule is empty.
	week := NewNormalizer().Normalize(weekWith(map[models.DayOfWeek][]models.Shift{
		models.Friday:   {mustShift(t, "22:00:00", "24:00:00")},
		models.Saturday: {mustShift(t, "00:00:00", "02:00:00")},
	}))
	engine := NewStatusEngine()

	status, current := engine.Evaluate(week, instant(20, 1, 0))

	if status != models.Open {
		t.Errorf("Expected Open at Saturday 01:00, got %v", status)
	}
	if current == nil || !current.Overnight() {
		t.Errorf("Expected the merged overnight shift as current, got %v", current)
	}

	// Within the hour of the overnight end the status refines.
	status, _ = engine.Evaluate(week, instant(20, 1, 30))
	if status != models.ClosingWithinHour {
		t.Errorf("Expected ClosingWithinHour at Saturday 01:30, got %v", status)
	}

	// Past the overnight end Saturday is just closed.
	status, _ = engine.Evaluate(week, instant(20, 2, 0))
	if status != models.Closed {
		t.Errorf("Expected Closed at Saturday 02:00, got %v", status)
	}
}

func TestEvaluate_OvernightShiftOnItsOwnDay(t *testing.T) {
	week := NewNormalizer().Normalize(weekWith(map[models.DayOfWeek][]models.Shift{
		models.Friday:   {mustShift(t, "22:00:00", "24:00:00")},
		models.Saturday: {mustShift(t, "00:00:00", "02:00:00")},
	}))
	engine := NewStatusEngine()

	// Friday 23:00 falls inside the merged shift on its owning day.
	status, current := engine.Evaluate(week, instant(19, 23, 0))

	if status != models.Open {
		t.Errorf("Expected Open at Friday 23:00, got %v", status)
	}
	if current == nil || !current.Overnight() {
		t.Errorf("Expected the merged overnight shift as current, got %v", current)
	}
}

func TestEvaluate_OpenAllDayNeverClosingSoon(t *testing.T) {
	// An all-day shift has no meaningful end boundary, so even 23:30 stays
	// plain Open.
	week := weekWith(map[models.DayOfWeek][]models.Shift{
		models.Monday: {mustShift(t, "00:00:00", "24:00:00")},
	})
	engine := NewStatusEngine()

	for _, now := range []time.Time{instant(15, 0, 0), instant(15, 12, 0), instant(15, 23, 30)} {
		status, current := engine.Evaluate(week, now)
		if status != models.Open {
			t.Errorf("Expected Open at %v, got %v", now, status)
		}
		if current == nil {
			t.Errorf("Expected the all-day shift as current at %v", now)
		}
	}
}

func TestEvaluate_Total(t *testing.T) {
	// Every (week, now) yields exactly one of the three statuses; probe a
	// closed week and an odd zero-length shift for good measure.
	engine := NewStatusEngine()

	emptyWeek := weekWith(map[models.DayOfWeek][]models.Shift{})
	status, _ := engine.Evaluate(emptyWeek, instant(15, 12, 0))
	if status != models.Closed {
		t.Errorf("Expected Closed for an all-closed week, got %v", status)
	}

	zeroLength := weekWith(map[models.DayOfWeek][]models.Shift{
		models.Monday: {mustShift(t, "10:00:00", "10:00:00")},
	})
	status, current := engine.Evaluate(zeroLength, instant(15, 10, 0))
	if status != models.Closed {
		t.Errorf("Expected Closed for a zero-length shift, got %v", status)
	}
	if current != nil {
		t.Errorf("Expected no current shift, got %v", current)
	}
}
