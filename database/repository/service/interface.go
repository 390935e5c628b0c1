package serviceRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no service matches the given ID.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// List retrieves services ordered by name. With onlyActive set,
	// inactive services are excluded.
	List(ctx context.Context, onlyActive bool) ([]models.Service, error)
	// GetByID retrieves a service by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// Create inserts a new service record.
	Create(ctx context.Context, svc *models.Service) error
	// Update modifies an existing service record.
	Update(ctx context.Context, svc *models.Service) error
	// SetActive toggles a service's active flag.
	SetActive(ctx context.Context, id string, active bool) error
}
