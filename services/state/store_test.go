package state

import (
	"errors"
	"testing"

	"salonbook/models"
)

func reviewIDs(items []models.Review) []string {
	ids := make([]string, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.ID)
	}
	return ids
}

func assertOrder(t *testing.T, got []models.Review, want ...string) {
	t.Helper()
	ids := reviewIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected %d items %v, got %d items %v", len(want), want, len(ids), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestApplyInsert_Prepends(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{{ID: "r1"}})

	store.ApplyInsert(models.Review{ID: "r2"})

	items, status, err := store.Snapshot()
	if status != StatusReady || err != nil {
		t.Fatalf("unexpected status %s / err %v", status, err)
	}
	assertOrder(t, items, "r2", "r1")
}

func TestApplyInsert_Idempotent(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace(nil)

	review := models.Review{ID: "r1", Rating: 4}
	store.ApplyInsert(review)
	store.ApplyInsert(review)

	items, _, _ := store.Snapshot()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after duplicate insert, got %d", len(items))
	}
}

func TestApplyUpdate_ReplacesInPlace(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{
		{ID: "r1", Rating: 5},
		{ID: "r2", Rating: 3},
		{ID: "r3", Rating: 1},
	})

	store.ApplyUpdate(models.Review{ID: "r2", Rating: 4})

	items, _, _ := store.Snapshot()
	assertOrder(t, items, "r1", "r2", "r3")
	if items[1].Rating != 4 {
		t.Errorf("expected updated rating 4, got %d", items[1].Rating)
	}
}

func TestApplyUpdate_UnknownIDBehavesAsInsert(t *testing.T) {
	// The feed's weak ordering permits an update to arrive before the
	// corresponding insert or initial load.
	store := NewStore[models.Review]()
	store.Replace([]models.Review{{ID: "r1"}})

	store.ApplyUpdate(models.Review{ID: "r9", Rating: 2})

	items, _, _ := store.Snapshot()
	assertOrder(t, items, "r9", "r1")
}

func TestApplyDelete_RemovesAndIsIdempotent(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{{ID: "r1"}, {ID: "r2"}})

	store.ApplyDelete("r1")
	store.ApplyDelete("r1")
	store.ApplyDelete("unknown")

	items, _, _ := store.Snapshot()
	assertOrder(t, items, "r2")
}

func TestMutateLocally_ReconciledByFeedInsert(t *testing.T) {
	// An optimistic local insert must not be duplicated by the confirming
	// remote notification carrying the same identifier.
	store := NewStore[models.Booking]()
	store.Replace(nil)

	booking := models.Booking{ID: "b1", Status: models.BookingStatusPending}
	store.MutateLocally(booking)
	store.ApplyInsert(booking)

	if store.Len() != 1 {
		t.Fatalf("expected 1 booking after optimistic insert + feed insert, got %d", store.Len())
	}
}

func TestMutateLocally_UpdatesKnownEntity(t *testing.T) {
	store := NewStore[models.Booking]()
	store.Replace([]models.Booking{{ID: "b1", Status: models.BookingStatusPending}})

	store.MutateLocally(models.Booking{ID: "b1", Status: models.BookingStatusCancelled})

	items, _, _ := store.Snapshot()
	if len(items) != 1 || items[0].Status != models.BookingStatusCancelled {
		t.Fatalf("expected in-place optimistic update, got %+v", items)
	}
}

func TestReplace_IsWholesaleAndResetsError(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{{ID: "r1"}})
	store.Fail(errors.New("network down"))

	if _, status, err := store.Snapshot(); status != StatusError || err == nil {
		t.Fatalf("expected error status after Fail, got %s / %v", status, err)
	}

	store.Replace([]models.Review{{ID: "r5"}, {ID: "r6"}})

	items, status, err := store.Snapshot()
	if status != StatusReady || err != nil {
		t.Fatalf("expected ready status after Replace, got %s / %v", status, err)
	}
	assertOrder(t, items, "r5", "r6")
}

func TestFail_RetainsPreviousItems(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{{ID: "r1"}})

	store.Fail(errors.New("timeout"))

	items, status, _ := store.Snapshot()
	if status != StatusError {
		t.Fatalf("expected error status, got %s", status)
	}
	assertOrder(t, items, "r1")
}

func TestOnChange_SeesPostApplyCollection(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{
		{ID: "r1", Rating: 5},
		{ID: "r2", Rating: 3},
	})

	var lastAverage float64
	store.OnChange(func(items []models.Review) {
		lastAverage = AverageRating(items)
	})

	store.ApplyDelete("r2")
	if lastAverage != 5.0 {
		t.Errorf("expected average 5.0 after delete, got %v", lastAverage)
	}

	store.ApplyInsert(models.Review{ID: "r3", Rating: 3})
	if lastAverage != 4.0 {
		t.Errorf("expected average 4.0 after insert, got %v", lastAverage)
	}
}
