package review

import (
	"context"
	"fmt"

	reviewRepo "salonbook/database/repository/review"
	"salonbook/models"
)

// Error codes for remote-rejection class failures.
const (
	CodeInvalidInput = "invalidInput"
	CodeNotOwner     = "notOwner"
)

type ReviewError struct {
	Code    string
	Message string
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewReviewError(code, msg string) error {
	return &ReviewError{Code: code, Message: msg}
}

// ErrCode returns the review error code, or "" for other errors.
func ErrCode(err error) string {
	if re, ok := err.(*ReviewError); ok {
		return re.Code
	}
	return ""
}

// SubmitReviewInput is the client payload for a new review.
type SubmitReviewInput struct {
	UserID    string `json:"user_id"`
	ServiceID string `json:"service_id" binding:"required"`
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// UpdateReviewInput carries the mutable review fields; nil means unchanged.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewService defines the review operations exposed to the UI layer.
type ReviewService interface {
	// SubmitReview creates a review for a completed booking. One review per
	// booking is enforced by the store's unique index.
	SubmitReview(ctx context.Context, input SubmitReviewInput) (*models.Review, error)
	// UpdateReview changes the rating and/or comment of the caller's review.
	UpdateReview(ctx context.Context, id, userID string, updates UpdateReviewInput) (*models.Review, error)
	// DeleteReview removes the caller's review.
	DeleteReview(ctx context.Context, id, userID string) error
	// ServiceReviews lists a service's reviews, newest first.
	ServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error)
	// UserReviews lists a user's reviews, newest first.
	UserReviews(ctx context.Context, userID string) ([]models.Review, error)
	// AverageRating computes the service's mean rating, one decimal, 0 when unreviewed.
	AverageRating(ctx context.Context, serviceID string) (float64, error)
}

// reviewUpdate converts the service-level input to the repository's update type.
func reviewUpdate(in UpdateReviewInput) reviewRepo.ReviewUpdate {
	return reviewRepo.ReviewUpdate{Rating: in.Rating, Comment: in.Comment}
}
