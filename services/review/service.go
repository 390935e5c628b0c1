package review

import (
	"context"
	"fmt"
	"strconv"
	"time"

	reviewRepo "salonbook/database/repository/review"
	"salonbook/models"
	"salonbook/services/state"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func ratingCacheKey(serviceID string) string {
	return "rating:service:" + serviceID
}

// SubmitReview creates a review for a completed booking.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, input SubmitReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, NewReviewError(CodeInvalidInput, fmt.Sprintf("rating %d out of range 1..5", input.Rating))
	}

	now := time.Now().UTC()
	review := &models.Review{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		ServiceID: input.ServiceID,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateRating(ctx, input.ServiceID)
	s.Logger.Info("review submitted",
		zap.String("reviewID", review.ID),
		zap.String("serviceID", review.ServiceID),
		zap.Int("rating", review.Rating))
	return review, nil
}

// UpdateReview changes the rating and/or comment of the caller's review.
func (s *DefaultReviewService) UpdateReview(ctx context.Context, id, userID string, updates UpdateReviewInput) (*models.Review, error) {
	if updates.Rating != nil && (*updates.Rating < 1 || *updates.Rating > 5) {
		return nil, NewReviewError(CodeInvalidInput, fmt.Sprintf("rating %d out of range 1..5", *updates.Rating))
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, NewReviewError(CodeNotOwner, "review belongs to another user")
	}

	updated, err := s.Repo.Update(ctx, id, reviewUpdate(updates))
	if err != nil {
		return nil, err
	}

	s.invalidateRating(ctx, updated.ServiceID)
	return updated, nil
}

// DeleteReview removes the caller's review.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, id, userID string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return NewReviewError(CodeNotOwner, "review belongs to another user")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateRating(ctx, existing.ServiceID)
	s.Logger.Info("review deleted", zap.String("reviewID", id))
	return nil
}

// ServiceReviews lists a service's reviews, newest first.
func (s *DefaultReviewService) ServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error) {
	return s.Repo.ListByService(ctx, serviceID)
}

// UserReviews lists a user's reviews, newest first.
func (s *DefaultReviewService) UserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// AverageRating computes the service's mean rating from a fresh ratings
// projection, with a short Redis cache in front.
func (s *DefaultReviewService) AverageRating(ctx context.Context, serviceID string) (float64, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, ratingCacheKey(serviceID)).Result(); err == nil {
			if avg, err := strconv.ParseFloat(raw, 64); err == nil {
				return avg, nil
			}
		}
	}

	ratings, err := s.Repo.Ratings(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	avg := state.AverageOfRatings(ratings)

	if s.Cache != nil {
		raw := strconv.FormatFloat(avg, 'f', 1, 64)
		if err := s.Cache.Set(ctx, ratingCacheKey(serviceID), raw, s.CacheTTL).Err(); err != nil {
			s.Logger.Warn("failed to cache rating", zap.String("serviceID", serviceID), zap.Error(err))
		}
	}
	return avg, nil
}

func (s *DefaultReviewService) invalidateRating(ctx context.Context, serviceID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, ratingCacheKey(serviceID)).Err(); err != nil {
		s.Logger.Warn("failed to invalidate rating cache", zap.String("serviceID", serviceID), zap.Error(err))
	}
}
