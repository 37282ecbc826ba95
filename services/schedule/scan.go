package schedule

import (
	"fmt"
	"time"

	"barberpro/models"
)

// scanBookings checks every active booking in the range against a proposed
// weekly schedule, with the provider's date exceptions still in force, and
// classifies each booking that no longer fits.
func (s *DefaultScheduleService) scanBookings(provider *models.Provider, proposed models.WorkingHours, r dateRange) (*models.ScheduleValidationResult, error) {
	tz := provider.Timezone
	if tz == "" {
		tz = s.Opts.DefaultTimezone
	}
	hm, err := NewHoursModel(proposed, tz)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.ProviderRepo.ListExceptions(provider.ID)
	if err != nil {
		return nil, err
	}
	cal := NewCalendar(exceptions, s.Opts.ExplicitExceptionWins)

	bookings, err := s.BookingRepo.ListByProviderDateRange(provider.ID, r.from, r.to)
	if err != nil {
		return nil, err
	}

	result := &models.ScheduleValidationResult{Conflicts: []models.ScheduleConflict{}}
	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		result.TotalBookingsChecked++

		localStart := b.StartTime.In(hm.Location())
		day := EffectiveDay(hm, cal, localStart)
		if c := classifyBooking(day, b, hm.Location()); c != nil {
			result.Conflicts = append(result.Conflicts, *c)
		}
	}

	result.HasConflicts = len(result.Conflicts) > 0
	result.CanApplyChanges = !result.HasConflicts
	return result, nil
}

// classifyBooking reports why a booking does not fit the given effective day,
// or nil when it fits. The classification follows the strictest applicable
// reason: a closed day beats an hours mismatch beats a break overlap.
func classifyBooking(day *models.DayHours, b models.Booking, loc *time.Location) *models.ScheduleConflict {
	start := MinuteOf(b.StartTime.In(loc))
	end := MinuteOf(b.EndTime.In(loc))
	if end <= start {
		// Booking runs to midnight or beyond; clamp to end of day.
		end = models.TimeOfDay(24 * 60)
	}

	conflict := func(t models.ScheduleConflictType, msg string) *models.ScheduleConflict {
		return &models.ScheduleConflict{
			Type:      t,
			BookingID: b.ID,
			Date:      b.Date,
			StartTime: start,
			EndTime:   end,
			Message:   msg,
		}
	}

	if day == nil || !day.IsOpen {
		return conflict(models.ScheduleDayClosed, "the provider would be closed on this date")
	}
	if !day.Contains(start, end) {
		return conflict(models.ScheduleOutsideHours,
			fmt.Sprintf("booking %s-%s would fall outside working hours %s-%s",
				start, end, day.OpenTime, day.CloseTime))
	}
	if br := day.OverlappingBreak(start, end); br != nil {
		return conflict(models.ScheduleBreakConflict,
			fmt.Sprintf("booking %s-%s would overlap a break %s-%s", start, end, br.Start, br.End))
	}
	return nil
}

// bookingFits reports whether a booking still fits an effective day, reusing
// the scan classification.
func bookingFits(day *models.DayHours, b models.Booking, loc *time.Location) bool {
	return classifyBooking(day, b, loc) == nil
}
