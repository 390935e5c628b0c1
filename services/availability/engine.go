package availability

import (
	"salonbook/models"
)

// Engine derives the bookable time slots of a (service, date) pair from the
// fixed daily slot grid and the bookings occupying it. It is a pure function
// of its inputs: deterministic, no side effects, and no double-booking
// prevention of its own. The repository's unique index is the real guard;
// callers re-query immediately before creating a booking.
type Engine struct {
	grid []string
}

// NewEngine creates an Engine over the given ordered slot grid. The grid is
// configuration data, not a constant.
func NewEngine(grid []string) *Engine {
	return &Engine{grid: grid}
}

// Grid returns the engine's ordered slot labels.
func (e *Engine) Grid() []string {
	return e.grid
}

// HasLabel reports whether the given time label is on the slot grid.
func (e *Engine) HasLabel(label string) bool {
	for _, t := range e.grid {
		if t == label {
			return true
		}
	}
	return false
}

// Slots returns one TimeSlot per grid label, in grid order, marking a label
// unavailable when a slot-occupying booking holds it. Cancelled bookings do
// not occupy a slot; completed bookings are historical and past-dated by
// construction. An empty grid yields an empty result, not an error.
func (e *Engine) Slots(bookings []models.Booking) []models.TimeSlot {
	occupied := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.OccupiesSlot() {
			occupied[b.BookingTime] = struct{}{}
		}
	}

	slots := make([]models.TimeSlot, 0, len(e.grid))
	for _, label := range e.grid {
		_, taken := occupied[label]
		slots = append(slots, models.TimeSlot{
			Time:        label,
			IsAvailable: !taken,
		})
	}
	return slots
}
