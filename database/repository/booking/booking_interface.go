package bookingRepo

import (
	"time"

	"barberpro/models"
)

// BookingRepository defines data access for booking records. Implementations
// return (nil, nil) for missing records; services translate that into typed
// not-found errors.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(bookingID string) (*models.Booking, error)
	Update(b *models.Booking) error
	// ListByProviderDate returns every booking for a provider on one
	// provider-local date ("2006-01-02"), regardless of status.
	ListByProviderDate(providerID, date string) ([]models.Booking, error)
	// ListByProviderDateRange covers [fromDate, toDate] inclusive.
	ListByProviderDateRange(providerID, fromDate, toDate string) ([]models.Booking, error)
	// ListPendingCreatedBefore returns PENDING bookings created at or before
	// the cutoff, for the expiration sweep.
	ListPendingCreatedBefore(cutoff time.Time) ([]models.Booking, error)
	Search(q models.BookingSearchQuery) ([]models.Booking, int64, error)
}
