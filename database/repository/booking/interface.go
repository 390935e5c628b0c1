package bookingRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

var (
	// ErrNotFound is returned when no booking matches the given ID.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken is returned when an insert collides with the unique
	// (service, date, time) index over non-cancelled bookings. The index is
	// the system-of-record guard behind the engine's best-effort check.
	ErrSlotTaken = errors.New("time slot already booked")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// ListByUser retrieves a user's bookings ordered by booking date descending.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListForSlotGrid retrieves the bookings occupying the slot grid of a
	// (service, date) pair, restricted to the given statuses.
	ListForSlotGrid(ctx context.Context, serviceID, date string, statuses []string) ([]models.Booking, error)
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// UpdateStatus sets a booking's status and returns the updated record.
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
}
