package state

import (
	"math"

	"salonbook/models"
)

// AverageRating computes the arithmetic mean of the collection's ratings,
// rounded to one decimal place for display. An empty collection yields 0.
// It recomputes from the full collection rather than patching a running
// sum, so it stays correct under update and delete events that change set
// membership; review collections per service are small enough that the
// linear cost per recompute does not matter.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// AverageOfRatings is AverageRating over bare rating values, for callers
// holding a ratings projection instead of full reviews.
func AverageOfRatings(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}
