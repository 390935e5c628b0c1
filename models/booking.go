package models

import "time"

// Booking statuses. Only pending->cancelled and confirmed->cancelled are
// client-initiated; confirmed and completed are set by backend authority
// and observed through the change feed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a reservation of one slot-grid label for a service on a date.
type Booking struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ServiceID   string    `bson:"service_id" json:"service_id"`
	BookingDate string    `bson:"booking_date" json:"booking_date"` // "2006-01-02"
	BookingTime string    `bson:"booking_time" json:"booking_time"` // slot label, e.g. "10:00"
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalPrice  float64   `bson:"total_price" json:"total_price"` // service price snapshot at creation
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	User        *User     `bson:"user,omitempty" json:"user,omitempty"`
	Service     *Service  `bson:"service,omitempty" json:"service,omitempty"`
}

// EntityID returns the booking identifier.
func (b Booking) EntityID() string { return b.ID }

// OccupiesSlot reports whether the booking blocks its (service, date, time)
// slot. Cancelled bookings free the slot; completed bookings are historical
// and past-dated by construction.
func (b Booking) OccupiesSlot() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanCancel reports whether a client may cancel a booking in this status.
func CanCancel(status string) bool {
	return status == BookingStatusPending || status == BookingStatusConfirmed
}
