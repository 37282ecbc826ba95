package schedule

import (
	bookingRepo "barberpro/database/repository/booking"
	providerRepo "barberpro/database/repository/provider"
	"barberpro/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService manages a provider's weekly hours, date exceptions, and
// templates, and reports the impact of proposed changes on existing bookings.
type ScheduleService interface {
	GetSchedule(providerID string) (*models.ScheduleView, error)
	UpdateWorkingHours(providerID string, hours models.WorkingHours) (*models.ScheduleValidationResult, error)
	BulkUpdateHours(providerID string, update models.BulkScheduleUpdate) (*models.ScheduleValidationResult, error)
	AddException(providerID string, exc models.ScheduleException) (*models.ScheduleException, int, error)
	ValidateProposed(providerID string, hours models.WorkingHours, fromDate, toDate string) (*models.ScheduleValidationResult, error)
	CreateTemplate(t models.ScheduleTemplate) (*models.ScheduleTemplate, error)
	ApplyTemplate(providerID, templateID string) (*models.ScheduleValidationResult, error)
}

// Options are the schedule service knobs, filled from config at wiring time.
type Options struct {
	ExplicitExceptionWins bool
	DefaultTimezone       string
	// RecurringHorizonDays bounds how far ahead a recurring exception's
	// affected-bookings count looks.
	RecurringHorizonDays int
	// TemplateHorizonDays bounds the booking scan when applying a template.
	TemplateHorizonDays int
}

// DefaultScheduleService implements ScheduleService over the injected
// repositories. Cache is optional.
type DefaultScheduleService struct {
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	Cache        *redis.Client
	Opts         Options
}

// NewScheduleService builds the schedule service with defaulted horizons.
func NewScheduleService(
	providers providerRepo.ProviderRepository,
	bookings bookingRepo.BookingRepository,
	cache *redis.Client,
	opts Options,
) *DefaultScheduleService {
	if opts.RecurringHorizonDays <= 0 {
		opts.RecurringHorizonDays = 365
	}
	if opts.TemplateHorizonDays <= 0 {
		opts.TemplateHorizonDays = 30
	}
	return &DefaultScheduleService{
		ProviderRepo: providers,
		BookingRepo:  bookings,
		Cache:        cache,
		Opts:         opts,
	}
}
