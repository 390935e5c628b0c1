package state

import (
	"testing"

	"salonbook/models"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty collection", nil, 0},
		{"single review", []int{5}, 5.0},
		{"whole average", []int{5, 4, 3}, 4.0},
		{"rounded to one decimal", []int{5, 4}, 4.5},
		{"rounding down", []int{5, 5, 4}, 4.7},
		{"all ones", []int{1, 1, 1}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]models.Review, 0, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews = append(reviews, models.Review{ID: string(rune('a' + i)), Rating: r})
			}
			if got := AverageRating(reviews); got != tt.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
			if got := AverageOfRatings(tt.ratings); got != tt.want {
				t.Errorf("AverageOfRatings(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestAverageRating_AfterDelete(t *testing.T) {
	store := NewStore[models.Review]()
	store.Replace([]models.Review{
		{ID: "1", Rating: 5},
		{ID: "2", Rating: 3},
	})

	items, _, _ := store.Snapshot()
	if got := AverageRating(items); got != 4.0 {
		t.Fatalf("expected average 4.0, got %v", got)
	}

	store.ApplyDelete("2")

	items, _, _ = store.Snapshot()
	if got := AverageRating(items); got != 5.0 {
		t.Fatalf("expected average 5.0 after delete, got %v", got)
	}
}
