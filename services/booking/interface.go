package booking

import (
	"time"

	bookingRepo "barberpro/database/repository/booking"
	catalogRepo "barberpro/database/repository/catalog"
	providerRepo "barberpro/database/repository/provider"
	"barberpro/models"

	"github.com/go-redis/redis/v8"
)

// BookingService is the booking engine's public surface. Transport framing is
// the handlers' concern; everything here speaks models and typed errors.
type BookingService interface {
	GetAvailability(providerID, serviceID, date string) (*models.DailyAvailability, error)
	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	UpdateStatus(bookingID string, action models.BookingAction, reason, actor string) (*models.Booking, error)
	Reschedule(bookingID string, req models.RescheduleRequest) (*models.Booking, error)
	BulkUpdate(req models.BulkUpdateRequest) (*models.BulkUpdateResult, error)
	GetBooking(bookingID string) (*models.Booking, error)
	Search(q models.BookingSearchQuery) (*models.BookingSearchResult, error)
	SweepExpirations(now time.Time) (int, error)
}

// Options are the scheduling knobs, filled from config at wiring time.
type Options struct {
	SlotStep              time.Duration
	SuggestionCount       int
	PendingExpiration     time.Duration
	BulkLimit             int
	AutoConfirm           bool
	ExplicitExceptionWins bool
	DefaultTimezone       string
}

// DefaultBookingService implements BookingService on top of the injected
// repositories. Cache is optional; when nil, availability is always computed.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	CatalogRepo  catalogRepo.ServiceRepository
	Cache        *redis.Client
	Opts         Options

	locks *providerDayLocks
}

// NewBookingService builds a service with its claim locks initialized.
func NewBookingService(
	repo bookingRepo.BookingRepository,
	providers providerRepo.ProviderRepository,
	catalog catalogRepo.ServiceRepository,
	cache *redis.Client,
	opts Options,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:         repo,
		ProviderRepo: providers,
		CatalogRepo:  catalog,
		Cache:        cache,
		Opts:         opts,
		locks:        newProviderDayLocks(),
	}
}
