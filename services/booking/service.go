package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	serviceRepo "salonbook/database/repository/service"
	"salonbook/models"
	"salonbook/services/availability"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout       = "2006-01-02"
	servicesCacheKey = "services:active"
	servicesCacheTTL = 60 * time.Second
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
	Engine      *availability.Engine
	Cache       *redis.Client
	Logger      *zap.Logger
}

// GetServices lists the active service catalog, cached briefly in Redis.
func (s *DefaultBookingService) GetServices(ctx context.Context) ([]models.Service, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, servicesCacheKey).Result(); err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(raw), &services); err == nil {
				return services, nil
			}
		}
	}

	services, err := s.ServiceRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(ctx, servicesCacheKey, raw, servicesCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache service catalog", zap.Error(err))
			}
		}
	}
	return services, nil
}

// GetServiceByID fetches one service.
func (s *DefaultBookingService) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return s.ServiceRepo.GetByID(ctx, id)
}

// AvailableSlots derives the slot grid availability for a (service, date)
// pair from the bookings currently occupying it.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, serviceID, date string) ([]models.TimeSlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("invalid booking date %q, want YYYY-MM-DD", date))
	}

	occupying, err := s.BookingRepo.ListForSlotGrid(ctx, serviceID, date, []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
	})
	if err != nil {
		return nil, err
	}
	return s.Engine.Slots(occupying), nil
}

// CreateBooking validates the requested slot, re-checks availability
// immediately before the insert, snapshots the service price and creates
// the booking in pending status. The re-check is best effort: the window
// between it and the insert is closed by the repository's unique index,
// not by this layer.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("invalid booking date %q, want YYYY-MM-DD", input.Date))
	}
	if !s.Engine.HasLabel(input.Time) {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("time %q is not on the slot grid", input.Time))
	}

	svc, err := s.ServiceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, NewBookingError(CodeInvalidInput, fmt.Sprintf("service %s is not bookable", svc.ID))
	}

	slots, err := s.AvailableSlots(ctx, input.ServiceID, input.Date)
	if err != nil {
		return nil, err
	}
	for _, slot := range slots {
		if slot.Time == input.Time && !slot.IsAvailable {
			return nil, NewBookingError(CodeSlotTaken, fmt.Sprintf("slot %s on %s is already booked", input.Time, input.Date))
		}
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		ServiceID:   input.ServiceID,
		BookingDate: input.Date,
		BookingTime: input.Time,
		Status:      models.BookingStatusPending,
		Notes:       input.Notes,
		TotalPrice:  svc.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
		Service:     svc,
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		if err == bookingRepo.ErrSlotTaken {
			return nil, NewBookingError(CodeSlotTaken, fmt.Sprintf("slot %s on %s is already booked", input.Time, input.Date))
		}
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", booking.ServiceID),
		zap.String("date", booking.BookingDate),
		zap.String("time", booking.BookingTime))
	return booking, nil
}

// CancelBooking cancels the caller's booking. The transition table only
// allows pending->cancelled and confirmed->cancelled from the client;
// cancelling an already cancelled booking succeeds without altering
// anything, and completed bookings are refused.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, NewBookingError(CodeNotOwner, "booking belongs to another user")
	}

	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}
	if !models.CanCancel(booking.Status) {
		return nil, NewBookingError(CodeInvalidTransition,
			fmt.Sprintf("cannot cancel a booking in status %q", booking.Status))
	}

	updated, err := s.BookingRepo.UpdateStatus(ctx, id, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("booking cancelled", zap.String("bookingID", id))
	return updated, nil
}

// ListUserBookings lists a user's bookings, booking date descending.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByUser(ctx, userID)
}
