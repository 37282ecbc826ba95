package schedule

import (
	"time"

	"barberpro/models"
)

// Calendar resolves date-specific schedule exceptions. At most one exception
// applies to a concrete date; when both an explicit (non-recurring) and a
// recurring exception match, the configured precedence decides.
type Calendar struct {
	explicit     map[string]models.ScheduleException // keyed by "2006-01-02"
	recurring    map[string]models.ScheduleException // keyed by "01-02"
	explicitWins bool
}

// NewCalendar indexes the provider's exceptions. explicitWins selects the
// precedence for dates where both an explicit and a recurring exception apply.
func NewCalendar(exceptions []models.ScheduleException, explicitWins bool) *Calendar {
	c := &Calendar{
		explicit:     make(map[string]models.ScheduleException),
		recurring:    make(map[string]models.ScheduleException),
		explicitWins: explicitWins,
	}
	for _, exc := range exceptions {
		if exc.Recurring {
			c.recurring[exc.MonthDay()] = exc
		} else {
			c.explicit[exc.Date] = exc
		}
	}
	return c
}

// ExceptionFor returns the single exception in force on the given date
// ("2006-01-02"), or nil when the weekly hours apply unchanged.
func (c *Calendar) ExceptionFor(date string) *models.ScheduleException {
	explicit, hasExplicit := c.explicit[date]
	var recurring models.ScheduleException
	hasRecurring := false
	if len(date) == len(dateLayout) {
		recurring, hasRecurring = c.recurring[date[5:]]
	}

	switch {
	case hasExplicit && hasRecurring:
		if c.explicitWins {
			return &explicit
		}
		return &recurring
	case hasExplicit:
		return &explicit
	case hasRecurring:
		return &recurring
	default:
		return nil
	}
}

// EffectiveDay resolves the hours actually in force on a concrete date:
// a closed exception blanks the day, special hours replace it wholesale, and
// otherwise the weekly working hours apply.
func EffectiveDay(m *HoursModel, cal *Calendar, date time.Time) *models.DayHours {
	if cal != nil {
		if exc := cal.ExceptionFor(date.In(m.Location()).Format(dateLayout)); exc != nil {
			switch exc.Type {
			case models.ExceptionClosed:
				return nil
			case models.ExceptionSpecialHours:
				if exc.SpecialHours == nil {
					return nil
				}
				d := *exc.SpecialHours
				d.IsOpen = true
				return &d
			}
		}
	}
	return m.DayHours(date)
}
