package models

// TimeSlot is a single label of the daily slot grid with its computed
// availability. Purely derived, never persisted; recomputed on every query.
type TimeSlot struct {
	Time        string `json:"time"`
	IsAvailable bool   `json:"is_available"`
}
