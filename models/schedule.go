package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday identifies a day of the provider's weekly schedule.
// Values match the keys used by the schedule API ("monday".."sunday").
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the weekdays in calendar order (Monday first).
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf maps a concrete date to its schedule weekday.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Valid reports whether w is one of the seven known weekdays.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// TimeOfDay is a wall-clock time expressed as minutes from midnight in the
// provider's timezone (e.g., 540 for 09:00). It marshals to/from "HH:mm".
type TimeOfDay int

// ParseTimeOfDay parses an "HH:mm" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Minutes returns the raw minutes-from-midnight value.
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// BreakWindow is an unbookable interval inside a day's open hours.
type BreakWindow struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// DayHours describes one weekday of a provider's schedule: whether the day is
// open, its open/close window, and its break windows (sorted, non-overlapping).
type DayHours struct {
	IsOpen    bool          `bson:"isOpen" json:"isOpen"`
	OpenTime  TimeOfDay     `bson:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime TimeOfDay     `bson:"closeTime,omitempty" json:"closeTime,omitempty"`
	Breaks    []BreakWindow `bson:"breaks,omitempty" json:"breaks,omitempty"`
}

// Contains reports whether [start, end) lies fully inside the open window.
func (d DayHours) Contains(start, end TimeOfDay) bool {
	return d.IsOpen && start >= d.OpenTime && end <= d.CloseTime
}

// OverlappingBreak returns the first break window intersecting [start, end)
// (half-open comparison), or nil when the interval avoids every break.
func (d DayHours) OverlappingBreak(start, end TimeOfDay) *BreakWindow {
	for _, b := range d.Breaks {
		if start < b.End && b.Start < end {
			br := b
			return &br
		}
	}
	return nil
}

// WorkingHours maps each weekday to its hours. Missing weekdays are closed.
type WorkingHours map[Weekday]DayHours

// ScheduleTemplate is a named, reusable WorkingHours set a provider can apply
// to their schedule in one operation.
type ScheduleTemplate struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Description  string       `bson:"description,omitempty" json:"description,omitempty"`
	WorkingHours WorkingHours `bson:"workingHours" json:"workingHours"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
}

// BulkScheduleOperation enumerates the supported bulk weekday edits.
type BulkScheduleOperation string

const (
	BulkSetHours  BulkScheduleOperation = "set_hours"
	BulkAddBreaks BulkScheduleOperation = "add_breaks"
)

// BulkScheduleUpdate applies one operation to a set of weekdays at once.
type BulkScheduleUpdate struct {
	Operation BulkScheduleOperation `json:"operation" binding:"required"`
	Days      []Weekday             `json:"days" binding:"required"`
	Hours     DayHours              `json:"workingHours"`
}
