package catalogRepo

import "barberpro/models"

// ServiceRepository defines data access for the provider service catalog.
// Implementations return (nil, nil) when a record does not exist.
type ServiceRepository interface {
	GetByID(serviceID string) (*models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
}
