package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"barberpro/models"
	"barberpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetSchedule returns the provider's weekly hours and timezone.
func (s *DefaultScheduleService) GetSchedule(providerID string) (*models.ScheduleView, error) {
	provider, err := s.loadProvider(providerID)
	if err != nil {
		return nil, err
	}
	return &models.ScheduleView{
		ProviderID:   provider.ID,
		ProviderName: provider.BusinessName,
		WorkingHours: provider.WorkingHours,
		Timezone:     provider.Timezone,
		LastUpdated:  provider.UpdatedAt,
	}, nil
}

// UpdateWorkingHours replaces the provider's weekly schedule. The change is
// applied only when no existing active booking would be stranded by it; the
// returned result reports the affected bookings either way.
func (s *DefaultScheduleService) UpdateWorkingHours(providerID string, hours models.WorkingHours) (*models.ScheduleValidationResult, error) {
	if err := ValidateWorkingHours(hours); err != nil {
		return nil, err
	}

	provider, err := s.loadProvider(providerID)
	if err != nil {
		return nil, err
	}

	result, err := s.scanBookings(provider, hours, s.defaultScanRange())
	if err != nil {
		return nil, err
	}
	if !result.CanApplyChanges {
		return result, nil
	}

	if err := s.ProviderRepo.UpdateWorkingHours(providerID, hours); err != nil {
		return nil, err
	}
	s.invalidateProvider(providerID)

	utils.GetLogger().Info("working hours updated", zap.String("providerID", providerID))
	return result, nil
}

// BulkUpdateHours applies one operation (set_hours or add_breaks) to several
// weekdays at once, then validates and persists the resulting schedule as a
// whole.
func (s *DefaultScheduleService) BulkUpdateHours(providerID string, update models.BulkScheduleUpdate) (*models.ScheduleValidationResult, error) {
	if len(update.Days) == 0 {
		return nil, &ScheduleValidationError{Violations: []string{"days must not be empty"}}
	}
	for _, d := range update.Days {
		if !d.Valid() {
			return nil, &ScheduleValidationError{Violations: []string{fmt.Sprintf("unknown weekday %q", d)}}
		}
	}

	provider, err := s.loadProvider(providerID)
	if err != nil {
		return nil, err
	}

	next := make(models.WorkingHours, len(provider.WorkingHours))
	for day, dh := range provider.WorkingHours {
		next[day] = dh
	}

	switch update.Operation {
	case models.BulkSetHours:
		for _, day := range update.Days {
			next[day] = update.Hours
		}
	case models.BulkAddBreaks:
		for _, day := range update.Days {
			dh, ok := next[day]
			if !ok || !dh.IsOpen {
				return nil, &ScheduleValidationError{
					Violations: []string{fmt.Sprintf("%s: cannot add breaks to a closed day", day)},
				}
			}
			breaks := append(append([]models.BreakWindow{}, dh.Breaks...), update.Hours.Breaks...)
			sort.Slice(breaks, func(i, j int) bool { return breaks[i].Start < breaks[j].Start })
			dh.Breaks = breaks
			next[day] = dh
		}
	default:
		return nil, &ScheduleValidationError{
			Violations: []string{fmt.Sprintf("unknown operation %q", update.Operation)},
		}
	}

	return s.UpdateWorkingHours(providerID, next)
}

// ValidateProposed reports how a hypothetical weekly schedule would affect the
// provider's active bookings over [fromDate, toDate], without persisting
// anything. Date exceptions stay in force during the scan.
func (s *DefaultScheduleService) ValidateProposed(providerID string, hours models.WorkingHours, fromDate, toDate string) (*models.ScheduleValidationResult, error) {
	if err := ValidateWorkingHours(hours); err != nil {
		return nil, err
	}
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return nil, &ScheduleValidationError{Violations: []string{"fromDate must be formatted as YYYY-MM-DD"}}
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return nil, &ScheduleValidationError{Violations: []string{"toDate must be formatted as YYYY-MM-DD"}}
	}
	if to.Before(from) {
		return nil, &ScheduleValidationError{Violations: []string{"toDate must not be before fromDate"}}
	}

	provider, err := s.loadProvider(providerID)
	if err != nil {
		return nil, err
	}
	return s.scanBookings(provider, hours, dateRange{from: fromDate, to: toDate})
}

// CreateTemplate validates and stores a reusable schedule template.
func (s *DefaultScheduleService) CreateTemplate(t models.ScheduleTemplate) (*models.ScheduleTemplate, error) {
	if t.Name == "" {
		return nil, &ScheduleValidationError{Violations: []string{"template name is required"}}
	}
	if err := ValidateWorkingHours(t.WorkingHours); err != nil {
		return nil, err
	}

	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	if err := s.ProviderRepo.CreateTemplate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ApplyTemplate replaces the provider's weekly hours with a stored template's,
// subject to the same booking-impact validation as a direct update.
func (s *DefaultScheduleService) ApplyTemplate(providerID, templateID string) (*models.ScheduleValidationResult, error) {
	tpl, err := s.ProviderRepo.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, &NotFoundError{Resource: "schedule template", ID: templateID}
	}
	return s.UpdateWorkingHours(providerID, tpl.WorkingHours)
}

func (s *DefaultScheduleService) loadProvider(providerID string) (*models.Provider, error) {
	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, &NotFoundError{Resource: "provider", ID: providerID}
	}
	return provider, nil
}

func (s *DefaultScheduleService) invalidateProvider(providerID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	utils.InvalidateProviderAvailability(ctx, s.Cache, providerID)
}

type dateRange struct {
	from, to string
}

func (s *DefaultScheduleService) defaultScanRange() dateRange {
	today := time.Now().Format(dateLayout)
	horizon := time.Now().AddDate(0, 0, s.Opts.TemplateHorizonDays).Format(dateLayout)
	return dateRange{from: today, to: horizon}
}
