package reviewRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrNotFound is returned when no review matches the given ID.
var ErrNotFound = errors.New("review not found")

// ReviewUpdate carries the mutable fields of a review. Nil fields are left untouched.
type ReviewUpdate struct {
	Rating  *int
	Comment *string
}

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// ListByService retrieves a service's reviews ordered by creation time descending.
	ListByService(ctx context.Context, serviceID string) ([]models.Review, error)
	// ListByUser retrieves a user's reviews ordered by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	// GetByID retrieves a review by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// Create inserts a new review record.
	Create(ctx context.Context, review *models.Review) error
	// Update applies the given field updates and returns the updated record.
	Update(ctx context.Context, id string, updates ReviewUpdate) (*models.Review, error)
	// Delete removes a review record by its ID.
	Delete(ctx context.Context, id string) error
	// Ratings retrieves only the rating values of a service's reviews.
	Ratings(ctx context.Context, serviceID string) ([]int, error)
}
