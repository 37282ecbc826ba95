package schedule

import (
	"time"

	"barberpro/models"
	"barberpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddException stores a date-specific schedule override and returns it along
// with the number of existing active bookings the override would strand. For
// recurring exceptions the count covers every matching date within the
// configured horizon.
func (s *DefaultScheduleService) AddException(providerID string, exc models.ScheduleException) (*models.ScheduleException, int, error) {
	if err := validateException(exc); err != nil {
		return nil, 0, err
	}

	provider, err := s.loadProvider(providerID)
	if err != nil {
		return nil, 0, err
	}

	exc.ID = uuid.New().String()
	exc.ProviderID = providerID
	exc.CreatedAt = time.Now()

	affected, err := s.countAffectedBookings(provider, exc)
	if err != nil {
		return nil, 0, err
	}

	if err := s.ProviderRepo.AddException(&exc); err != nil {
		return nil, 0, err
	}
	s.invalidateProvider(providerID)

	utils.GetLogger().Info("schedule exception added",
		zap.String("providerID", providerID),
		zap.String("date", exc.Date),
		zap.String("type", string(exc.Type)),
		zap.Bool("recurring", exc.Recurring),
		zap.Int("affectedBookings", affected),
	)
	return &exc, affected, nil
}

func validateException(exc models.ScheduleException) error {
	var violations []string
	if _, err := time.Parse(dateLayout, exc.Date); err != nil {
		violations = append(violations, "date must be formatted as YYYY-MM-DD")
	}
	if !exc.Type.Valid() {
		violations = append(violations, "type must be closed or special_hours")
	}
	if exc.Type == models.ExceptionSpecialHours {
		if exc.SpecialHours == nil {
			violations = append(violations, "specialHours is required for special_hours exceptions")
		} else {
			dh := *exc.SpecialHours
			dh.IsOpen = true
			if err := ValidateDayHours(dh, "specialHours"); err != nil {
				if sv, ok := err.(*ScheduleValidationError); ok {
					violations = append(violations, sv.Violations...)
				} else {
					violations = append(violations, err.Error())
				}
			}
		}
	}
	if len(violations) > 0 {
		return &ScheduleValidationError{Violations: violations}
	}
	return nil
}

// countAffectedBookings counts the active bookings that would no longer fit
// once the exception takes effect.
func (s *DefaultScheduleService) countAffectedBookings(provider *models.Provider, exc models.ScheduleException) (int, error) {
	dates, err := s.exceptionDates(exc)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	tz := provider.Timezone
	if tz == "" {
		tz = s.Opts.DefaultTimezone
	}
	hm, err := NewHoursModel(provider.WorkingHours, tz)
	if err != nil {
		return 0, err
	}

	day := exceptionDay(exc)
	affected := 0
	for _, date := range dates {
		bookings, err := s.BookingRepo.ListByProviderDate(provider.ID, date)
		if err != nil {
			return 0, err
		}
		for _, b := range bookings {
			if !b.Status.Active() {
				continue
			}
			if !bookingFits(day, b, hm.Location()) {
				affected++
			}
		}
	}
	return affected, nil
}

// exceptionDates lists the concrete dates the exception applies to. A
// non-recurring exception covers its exact date; a recurring one covers every
// month-day match from today through the recurring horizon.
func (s *DefaultScheduleService) exceptionDates(exc models.ScheduleException) ([]string, error) {
	if !exc.Recurring {
		return []string{exc.Date}, nil
	}

	monthDay := exc.MonthDay()
	var dates []string
	day := time.Now()
	for i := 0; i <= s.Opts.RecurringHorizonDays; i++ {
		if day.Format("01-02") == monthDay {
			dates = append(dates, day.Format(dateLayout))
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates, nil
}

// exceptionDay resolves the effective hours under the exception: nil for
// closed days, the override for special hours.
func exceptionDay(exc models.ScheduleException) *models.DayHours {
	if exc.Type != models.ExceptionSpecialHours || exc.SpecialHours == nil {
		return nil
	}
	d := *exc.SpecialHours
	d.IsOpen = true
	return &d
}
