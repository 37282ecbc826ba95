package providerRepo

import "barberpro/models"

// ProviderRepository defines data access for providers, their schedules,
// exceptions, and schedule templates. Implementations return (nil, nil) when a
// record does not exist; services translate that into typed not-found errors.
type ProviderRepository interface {
	GetByID(providerID string) (*models.Provider, error)
	UpdateWorkingHours(providerID string, hours models.WorkingHours) error
	ListExceptions(providerID string) ([]models.ScheduleException, error)
	// AddException upserts on (providerId, date, recurring) so at most one
	// exception exists per key.
	AddException(exc *models.ScheduleException) error
	CreateTemplate(t *models.ScheduleTemplate) error
	GetTemplate(templateID string) (*models.ScheduleTemplate, error)
}
