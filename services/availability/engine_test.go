package availability

import (
	"testing"

	"salonbook/models"
)

func TestSlots_MarksBookedLabelsUnavailable(t *testing.T) {
	engine := NewEngine([]string{"09:00", "10:00", "11:00"})

	bookings := []models.Booking{
		{ID: "b1", BookingTime: "10:00", Status: models.BookingStatusPending},
	}

	slots := engine.Slots(bookings)

	want := []models.TimeSlot{
		{Time: "09:00", IsAvailable: true},
		{Time: "10:00", IsAvailable: false},
		{Time: "11:00", IsAvailable: true},
	}

	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, slot := range slots {
		if slot != want[i] {
			t.Errorf("slot %d: expected %+v, got %+v", i, want[i], slot)
		}
	}
}

func TestSlots_StatusFiltering(t *testing.T) {
	engine := NewEngine([]string{"09:00", "10:00", "11:00", "12:00"})

	bookings := []models.Booking{
		{ID: "b1", BookingTime: "09:00", Status: models.BookingStatusPending},
		{ID: "b2", BookingTime: "10:00", Status: models.BookingStatusConfirmed},
		{ID: "b3", BookingTime: "11:00", Status: models.BookingStatusCancelled},
		{ID: "b4", BookingTime: "12:00", Status: models.BookingStatusCompleted},
	}

	slots := engine.Slots(bookings)

	expected := map[string]bool{
		"09:00": false, // pending occupies
		"10:00": false, // confirmed occupies
		"11:00": true,  // cancelled frees the slot
		"12:00": true,  // completed is historical
	}
	for _, slot := range slots {
		if slot.IsAvailable != expected[slot.Time] {
			t.Errorf("slot %s: expected available=%v, got %v", slot.Time, expected[slot.Time], slot.IsAvailable)
		}
	}
}

func TestSlots_EmptyGrid(t *testing.T) {
	engine := NewEngine(nil)

	slots := engine.Slots([]models.Booking{
		{ID: "b1", BookingTime: "10:00", Status: models.BookingStatusPending},
	})

	if len(slots) != 0 {
		t.Fatalf("expected empty result for empty grid, got %d slots", len(slots))
	}
}

func TestSlots_NoBookings(t *testing.T) {
	grid := []string{"09:00", "10:00"}
	engine := NewEngine(grid)

	slots := engine.Slots(nil)

	if len(slots) != len(grid) {
		t.Fatalf("expected %d slots, got %d", len(grid), len(slots))
	}
	for i, slot := range slots {
		if slot.Time != grid[i] {
			t.Errorf("slot %d: expected label %s in grid order, got %s", i, grid[i], slot.Time)
		}
		if !slot.IsAvailable {
			t.Errorf("slot %s: expected available with no bookings", slot.Time)
		}
	}
}

func TestSlots_OffGridBookingIgnored(t *testing.T) {
	engine := NewEngine([]string{"09:00", "10:00"})

	slots := engine.Slots([]models.Booking{
		{ID: "b1", BookingTime: "23:00", Status: models.BookingStatusConfirmed},
	})

	for _, slot := range slots {
		if !slot.IsAvailable {
			t.Errorf("slot %s: off-grid booking must not affect availability", slot.Time)
		}
	}
}

func TestHasLabel(t *testing.T) {
	engine := NewEngine([]string{"09:00", "10:00"})

	if !engine.HasLabel("09:00") {
		t.Error("expected 09:00 to be on the grid")
	}
	if engine.HasLabel("08:00") {
		t.Error("expected 08:00 to be off the grid")
	}
}
