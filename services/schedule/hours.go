package schedule

import (
	"fmt"
	"time"

	"barberpro/models"
)

const dateLayout = "2006-01-02"

// HoursModel answers open/closed questions for one provider's weekly working
// hours, in the provider's timezone. All slot math happens in wall-clock
// minutes within that timezone; absolute instants appear only at the edges.
type HoursModel struct {
	hours models.WorkingHours
	loc   *time.Location
}

// NewHoursModel validates the given hours and binds them to a timezone.
// Validation reports every violation found, not just the first.
func NewHoursModel(hours models.WorkingHours, timezone string) (*HoursModel, error) {
	if err := ValidateWorkingHours(hours); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	return &HoursModel{hours: hours, loc: loc}, nil
}

// Location returns the provider's timezone.
func (m *HoursModel) Location() *time.Location { return m.loc }

// DayHours returns the weekly hours for the date's weekday, or nil when that
// weekday is closed. Exceptions are not consulted here; see EffectiveDay.
func (m *HoursModel) DayHours(date time.Time) *models.DayHours {
	day, ok := m.hours[models.WeekdayOf(date.In(m.loc))]
	if !ok || !day.IsOpen {
		return nil
	}
	d := day
	return &d
}

// DayWindow returns the open/close window for the date, or ok=false if closed.
func (m *HoursModel) DayWindow(date time.Time) (open, close models.TimeOfDay, ok bool) {
	day := m.DayHours(date)
	if day == nil {
		return 0, 0, false
	}
	return day.OpenTime, day.CloseTime, true
}

// BreaksFor returns the date's break windows in ascending order (empty when
// the day is closed).
func (m *HoursModel) BreaksFor(date time.Time) []models.BreakWindow {
	day := m.DayHours(date)
	if day == nil {
		return nil
	}
	return day.Breaks
}

// IsOpenAt reports whether the provider is open for business at instant t:
// inside the day's open window and not inside a break.
func (m *HoursModel) IsOpenAt(t time.Time) bool {
	local := t.In(m.loc)
	day := m.DayHours(local)
	if day == nil {
		return false
	}
	minute := MinuteOf(local)
	if minute < day.OpenTime || minute >= day.CloseTime {
		return false
	}
	for _, b := range day.Breaks {
		if minute >= b.Start && minute < b.End {
			return false
		}
	}
	return true
}

// MinuteOf converts a wall-clock instant to minutes from its local midnight.
func MinuteOf(t time.Time) models.TimeOfDay {
	return models.TimeOfDay(t.Hour()*60 + t.Minute())
}

// DayStart returns midnight of t's calendar day in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateWorkingHours checks a full weekly schedule, collecting every
// violation across all days.
func ValidateWorkingHours(hours models.WorkingHours) error {
	var violations []string
	for day := range hours {
		if !day.Valid() {
			violations = append(violations, fmt.Sprintf("unknown weekday %q", string(day)))
		}
	}
	for _, day := range models.AllWeekdays {
		dh, ok := hours[day]
		if !ok || !dh.IsOpen {
			continue
		}
		violations = append(violations, validateDayHours(dh, string(day))...)
	}
	if len(violations) > 0 {
		return &ScheduleValidationError{Violations: violations}
	}
	return nil
}

// ValidateDayHours checks a single day's hours (used for special-hours
// exceptions and bulk weekday edits).
func ValidateDayHours(dh models.DayHours, label string) error {
	if !dh.IsOpen {
		return nil
	}
	if violations := validateDayHours(dh, label); len(violations) > 0 {
		return &ScheduleValidationError{Violations: violations}
	}
	return nil
}

func validateDayHours(dh models.DayHours, label string) []string {
	var violations []string
	if dh.OpenTime >= dh.CloseTime {
		violations = append(violations, fmt.Sprintf("%s: openTime %s must be before closeTime %s", label, dh.OpenTime, dh.CloseTime))
	}
	for i, b := range dh.Breaks {
		if b.Start >= b.End {
			violations = append(violations, fmt.Sprintf("%s: break %s-%s is empty or inverted", label, b.Start, b.End))
			continue
		}
		if b.Start < dh.OpenTime || b.End > dh.CloseTime {
			violations = append(violations, fmt.Sprintf("%s: break %s-%s falls outside open hours %s-%s", label, b.Start, b.End, dh.OpenTime, dh.CloseTime))
		}
		if i > 0 {
			prev := dh.Breaks[i-1]
			if b.Start < prev.End {
				violations = append(violations, fmt.Sprintf("%s: break %s-%s overlaps or precedes break %s-%s", label, b.Start, b.End, prev.Start, prev.End))
			}
		}
	}
	return violations
}
