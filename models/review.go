package models

import "time"

// Review is a rating and comment left for a completed booking. One review
// per completed booking; enforcement of that rule is a backend concern.
type Review struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ServiceID string    `bson:"service_id" json:"service_id"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	User      *User     `bson:"user,omitempty" json:"user,omitempty"`
	Service   *Service  `bson:"service,omitempty" json:"service,omitempty"`
}

// EntityID returns the review identifier.
func (r Review) EntityID() string { return r.ID }
