package booking

import (
	"context"
	"encoding/json"
	"time"

	"barberpro/models"
	"barberpro/services/schedule"
	"barberpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const availabilityCacheTTL = 30 * time.Second

// providerSchedule bundles one provider's resolved schedule state.
type providerSchedule struct {
	provider *models.Provider
	hours    *schedule.HoursModel
	calendar *schedule.Calendar
}

func (ps *providerSchedule) location() *time.Location { return ps.hours.Location() }

// dayFor resolves the effective hours and provider-local midnight for a date.
func (ps *providerSchedule) dayFor(dayStart time.Time) (*models.DayHours, string) {
	return schedule.EffectiveDay(ps.hours, ps.calendar, dayStart), dayStart.Format(dateLayout)
}

// scheduleFor loads a provider with its working hours and exception calendar.
func (s *DefaultBookingService) scheduleFor(providerID string) (*providerSchedule, error) {
	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, &NotFoundError{Resource: "provider", ID: providerID}
	}

	tz := provider.Timezone
	if tz == "" {
		tz = s.Opts.DefaultTimezone
	}
	hm, err := schedule.NewHoursModel(provider.WorkingHours, tz)
	if err != nil {
		return nil, err
	}

	exceptions, err := s.ProviderRepo.ListExceptions(providerID)
	if err != nil {
		return nil, err
	}

	return &providerSchedule{
		provider: provider,
		hours:    hm,
		calendar: schedule.NewCalendar(exceptions, s.Opts.ExplicitExceptionWins),
	}, nil
}

// GetAvailability returns the bookable slots for one provider/service/date
// plus the effective working hours. Read-only: runs without the claim lock.
func (s *DefaultBookingService) GetAvailability(providerID, serviceID, date string) (*models.DailyAvailability, error) {
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if raw, err := s.Cache.Get(ctx, utils.AvailabilityCacheKey(providerID, serviceID, date)).Result(); err == nil {
			var cached models.DailyAvailability
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	svc, err := s.serviceFor(providerID, serviceID)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, &ValidationError{Message: "date must be formatted as YYYY-MM-DD"}
	}
	ps, err := s.scheduleFor(providerID)
	if err != nil {
		return nil, err
	}
	dayStart := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, ps.location())
	day, dateKey := ps.dayFor(dayStart)

	existing, err := s.Repo.ListByProviderDate(providerID, dateKey)
	if err != nil {
		return nil, err
	}

	slots, err := GenerateSlots(
		day,
		dayStart,
		time.Duration(svc.Duration)*time.Minute,
		time.Duration(ps.provider.BufferBefore)*time.Minute,
		time.Duration(ps.provider.BufferAfter)*time.Minute,
		s.Opts.SlotStep,
		existing,
	)
	if err != nil {
		return nil, err
	}

	result := &models.DailyAvailability{
		ProviderID:   providerID,
		ServiceID:    serviceID,
		Date:         dateKey,
		Slots:        slots,
		Count:        len(slots),
		WorkingHours: day,
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			s.Cache.Set(ctx, utils.AvailabilityCacheKey(providerID, serviceID, date), raw, availabilityCacheTTL)
		}
	}
	return result, nil
}

// CreateBooking validates the requested interval and, on success, persists a
// new booking. The read-check-write sequence runs under the per-provider-day
// claim lock so two overlapping requests cannot both win.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	svc, err := s.serviceFor(req.ProviderID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	ps, err := s.scheduleFor(req.ProviderID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.Duration) * time.Minute
	start := req.StartTime.In(ps.location())
	end := start.Add(duration)
	dayStart := schedule.DayStart(start)
	day, dateKey := ps.dayFor(dayStart)

	unlock := s.locks.acquire(req.ProviderID, dateKey)
	defer unlock()

	existing, err := s.Repo.ListByProviderDate(req.ProviderID, dateKey)
	if err != nil {
		return nil, err
	}

	report := CheckConflicts(ConflictCheckInput{
		Start:           start,
		End:             end,
		Day:             day,
		DayStart:        dayStart,
		Existing:        existing,
		BufferBefore:    time.Duration(ps.provider.BufferBefore) * time.Minute,
		BufferAfter:     time.Duration(ps.provider.BufferAfter) * time.Minute,
		ServiceDuration: duration,
		Step:            s.Opts.SlotStep,
		SuggestionCount: s.Opts.SuggestionCount,
	})
	if !report.Available {
		return nil, &ConflictError{Report: report}
	}

	now := time.Now()
	b := &models.Booking{
		ID:          uuid.New().String(),
		ClientID:    req.ClientID,
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		Date:        dateKey,
		StartTime:   start,
		EndTime:     end,
		Status:      models.StatusPending,
		TotalAmount: svc.Price,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	b.AppendEvent("created", req.ClientID, "", now)
	if s.Opts.AutoConfirm {
		b.Status = models.StatusConfirmed
		b.AppendEvent("confirmed", "system", "auto-confirmed", now)
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	s.invalidateAvailability(req.ProviderID, dateKey)

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("providerID", b.ProviderID),
		zap.String("date", b.Date),
	)
	return b, nil
}

// serviceFor fetches a service and checks it belongs to the provider.
func (s *DefaultBookingService) serviceFor(providerID, serviceID string) (*models.Service, error) {
	svc, err := s.CatalogRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || svc.ProviderID != providerID || !svc.IsActive {
		return nil, &NotFoundError{Resource: "service", ID: serviceID}
	}
	return svc, nil
}

func (s *DefaultBookingService) invalidateAvailability(providerID, date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	utils.InvalidateAvailability(ctx, s.Cache, providerID, date)
}
