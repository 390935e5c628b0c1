package booking

import (
	"context"

	"salonbook/models"
)

// CreateBookingInput is the client payload for a new booking. The server
// assigns identifier, status and total price.
type CreateBookingInput struct {
	UserID    string `json:"user_id"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"booking_date" binding:"required"`
	Time      string `json:"booking_time" binding:"required"`
	Notes     string `json:"notes"`
}

// BookingService defines the booking operations exposed to the UI layer.
type BookingService interface {
	// GetServices lists the active service catalog.
	GetServices(ctx context.Context) ([]models.Service, error)
	// GetServiceByID fetches one service.
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	// AvailableSlots derives the slot grid availability for a (service, date) pair.
	AvailableSlots(ctx context.Context, serviceID, date string) ([]models.TimeSlot, error)
	// CreateBooking re-checks availability, snapshots the service price and
	// creates a pending booking.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	// CancelBooking cancels the caller's booking. Cancelling an already
	// cancelled booking is a no-op success.
	CancelBooking(ctx context.Context, id, userID string) (*models.Booking, error)
	// ListUserBookings lists a user's bookings, booking date descending.
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)

	// CreateService adds a catalog entry. Operator side.
	CreateService(ctx context.Context, input CreateServiceInput) (*models.Service, error)
	// UpdateService applies a partial catalog update; nil fields keep
	// their current value. Operator side.
	UpdateService(ctx context.Context, id string, updates UpdateServiceInput) (*models.Service, error)
	// SetServiceActive toggles whether a service is bookable. Operator side.
	SetServiceActive(ctx context.Context, id string, active bool) error
}

// CreateServiceInput is the operator payload for a new catalog entry.
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	Category    string  `json:"category"`
}

// UpdateServiceInput carries a partial catalog update.
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Category    *string  `json:"category"`
}
