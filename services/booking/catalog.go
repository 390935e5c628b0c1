package booking

import (
	"context"
	"fmt"
	"time"

	"salonbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateService adds a catalog entry, active and bookable immediately.
func (s *DefaultBookingService) CreateService(ctx context.Context, input CreateServiceInput) (*models.Service, error) {
	if input.Name == "" {
		return nil, NewBookingError(CodeInvalidInput, "service name is required")
	}
	if input.Price <= 0 {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("price %.2f must be positive", input.Price))
	}
	if input.Duration <= 0 {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("duration %d must be positive minutes", input.Duration))
	}

	now := time.Now().UTC()
	svc := &models.Service{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.ServiceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.dropCatalogCache(ctx)
	s.Logger.Info("service created", zap.String("serviceID", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}

// UpdateService applies a partial update to a catalog entry.
func (s *DefaultBookingService) UpdateService(ctx context.Context, id string, updates UpdateServiceInput) (*models.Service, error) {
	if updates.Price != nil && *updates.Price <= 0 {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("price %.2f must be positive", *updates.Price))
	}
	if updates.Duration != nil && *updates.Duration <= 0 {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("duration %d must be positive minutes", *updates.Duration))
	}

	svc, err := s.ServiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updates.Name != nil {
		if *updates.Name == "" {
			return nil, NewBookingError(CodeInvalidInput, "service name cannot be empty")
		}
		svc.Name = *updates.Name
	}
	if updates.Description != nil {
		svc.Description = *updates.Description
	}
	if updates.Price != nil {
		svc.Price = *updates.Price
	}
	if updates.Duration != nil {
		svc.Duration = *updates.Duration
	}
	if updates.Category != nil {
		svc.Category = *updates.Category
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.ServiceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.dropCatalogCache(ctx)
	return svc, nil
}

// SetServiceActive toggles whether a service appears in the catalog and
// accepts bookings. Existing bookings are untouched.
func (s *DefaultBookingService) SetServiceActive(ctx context.Context, id string, active bool) error {
	if err := s.ServiceRepo.SetActive(ctx, id, active); err != nil {
		return err
	}

	s.dropCatalogCache(ctx)
	s.Logger.Info("service active flag changed", zap.String("serviceID", id), zap.Bool("active", active))
	return nil
}

func (s *DefaultBookingService) dropCatalogCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, servicesCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate service catalog cache", zap.Error(err))
	}
}
