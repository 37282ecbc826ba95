package schedule

import (
	"strings"
	"testing"
	"time"

	"barberpro/models"
)

func mustTime(t *testing.T, s string) models.TimeOfDay {
	t.Helper()
	tod, err := models.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}

func weekdayHours(t *testing.T) models.WorkingHours {
	t.Helper()
	day := models.DayHours{
		IsOpen:    true,
		OpenTime:  mustTime(t, "09:00"),
		CloseTime: mustTime(t, "17:00"),
		Breaks: []models.BreakWindow{
			{Start: mustTime(t, "13:00"), End: mustTime(t, "14:00")},
		},
	}
	return models.WorkingHours{
		models.Monday:    day,
		models.Tuesday:   day,
		models.Wednesday: day,
		models.Thursday:  day,
		models.Friday:    day,
	}
}

func TestValidateWorkingHours(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(models.WorkingHours)
		violations []string
	}{
		{
			name:   "valid schedule",
			mutate: func(models.WorkingHours) {},
		},
		{
			name: "open after close",
			mutate: func(h models.WorkingHours) {
				d := h[models.Monday]
				d.OpenTime = mustTime(t, "18:00")
				h[models.Monday] = d
			},
			violations: []string{"monday: openTime 18:00 must be before closeTime 17:00"},
		},
		{
			name: "inverted break",
			mutate: func(h models.WorkingHours) {
				d := h[models.Tuesday]
				d.Breaks = []models.BreakWindow{{Start: mustTime(t, "14:00"), End: mustTime(t, "13:00")}}
				h[models.Tuesday] = d
			},
			violations: []string{"tuesday: break 14:00-13:00 is empty or inverted"},
		},
		{
			name: "break outside open hours",
			mutate: func(h models.WorkingHours) {
				d := h[models.Wednesday]
				d.Breaks = []models.BreakWindow{{Start: mustTime(t, "08:00"), End: mustTime(t, "08:30")}}
				h[models.Wednesday] = d
			},
			violations: []string{"wednesday: break 08:00-08:30 falls outside open hours 09:00-17:00"},
		},
		{
			name: "overlapping breaks",
			mutate: func(h models.WorkingHours) {
				d := h[models.Thursday]
				d.Breaks = []models.BreakWindow{
					{Start: mustTime(t, "12:00"), End: mustTime(t, "13:00")},
					{Start: mustTime(t, "12:30"), End: mustTime(t, "13:30")},
				}
				h[models.Thursday] = d
			},
			violations: []string{"thursday: break 12:30-13:30 overlaps or precedes break 12:00-13:00"},
		},
		{
			name: "unknown weekday key",
			mutate: func(h models.WorkingHours) {
				h[models.Weekday("funday")] = models.DayHours{IsOpen: true}
			},
			violations: []string{`unknown weekday "funday"`},
		},
		{
			name: "multiple violations collected",
			mutate: func(h models.WorkingHours) {
				d := h[models.Monday]
				d.OpenTime = mustTime(t, "18:00")
				h[models.Monday] = d
				d2 := h[models.Friday]
				d2.Breaks = []models.BreakWindow{{Start: mustTime(t, "15:00"), End: mustTime(t, "15:00")}}
				h[models.Friday] = d2
			},
			violations: []string{
				"monday: openTime 18:00 must be before closeTime 17:00",
				"friday: break 15:00-15:00 is empty or inverted",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := weekdayHours(t)
			tt.mutate(hours)
			err := ValidateWorkingHours(hours)
			if len(tt.violations) == 0 {
				if err != nil {
					t.Fatalf("expected valid schedule, got %v", err)
				}
				return
			}
			sv, ok := err.(*ScheduleValidationError)
			if !ok {
				t.Fatalf("expected ScheduleValidationError, got %T (%v)", err, err)
			}
			if len(sv.Violations) != len(tt.violations) {
				t.Fatalf("expected %d violations, got %d: %v", len(tt.violations), len(sv.Violations), sv.Violations)
			}
			for _, want := range tt.violations {
				found := false
				for _, got := range sv.Violations {
					if got == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("missing violation %q in %v", want, sv.Violations)
				}
			}
		})
	}
}

func TestNewHoursModelRejectsBadTimezone(t *testing.T) {
	_, err := NewHoursModel(weekdayHours(t), "Mars/Olympus_Mons")
	if err == nil || !strings.Contains(err.Error(), "unknown timezone") {
		t.Fatalf("expected timezone error, got %v", err)
	}
}

func TestIsOpenAt(t *testing.T) {
	hm, err := NewHoursModel(weekdayHours(t), "America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("NewHoursModel: %v", err)
	}
	loc := hm.Location()

	// 2026-09-07 is a Monday.
	at := func(hour, min int) time.Time {
		return time.Date(2026, 9, 7, hour, min, 0, 0, loc)
	}

	tests := []struct {
		name string
		t    time.Time
		open bool
	}{
		{"before opening", at(8, 59), false},
		{"at opening", at(9, 0), true},
		{"mid morning", at(11, 30), true},
		{"start of break", at(13, 0), false},
		{"inside break", at(13, 30), false},
		{"end of break", at(14, 0), true},
		{"last open minute", at(16, 59), true},
		{"at closing", at(17, 0), false},
		{"closed weekday", time.Date(2026, 9, 6, 11, 0, 0, 0, loc), false}, // Sunday
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hm.IsOpenAt(tt.t); got != tt.open {
				t.Errorf("IsOpenAt(%v) = %v, want %v", tt.t, got, tt.open)
			}
		})
	}
}

func TestDayWindowClosedDay(t *testing.T) {
	hm, err := NewHoursModel(weekdayHours(t), "UTC")
	if err != nil {
		t.Fatalf("NewHoursModel: %v", err)
	}
	// Saturday is absent from the schedule, hence closed.
	if _, _, ok := hm.DayWindow(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)); ok {
		t.Fatal("expected Saturday to be closed")
	}
	open, close, ok := hm.DayWindow(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	if !ok || open.String() != "09:00" || close.String() != "17:00" {
		t.Fatalf("DayWindow = %s-%s, ok=%v", open, close, ok)
	}
}
