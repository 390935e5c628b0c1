package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "salonbook/database/repository/booking"
	serviceRepo "salonbook/database/repository/service"
	"salonbook/models"
	"salonbook/services/availability"

	"go.uber.org/zap"
)

// Mock repositories for testing
type mockServiceRepo struct {
	getByIDFunc   func(ctx context.Context, id string) (*models.Service, error)
	listFunc      func(ctx context.Context, onlyActive bool) ([]models.Service, error)
	createFunc    func(ctx context.Context, svc *models.Service) error
	updateFunc    func(ctx context.Context, svc *models.Service) error
	setActiveFunc func(ctx context.Context, id string, active bool) error
}

func (m *mockServiceRepo) List(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, onlyActive)
	}
	return nil, nil
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, serviceRepo.ErrNotFound
}

func (m *mockServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, svc)
	}
	return nil
}

func (m *mockServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, svc)
	}
	return nil
}

func (m *mockServiceRepo) SetActive(ctx context.Context, id string, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, id, active)
	}
	return nil
}

type mockBookingRepo struct {
	listForSlotGridFunc func(ctx context.Context, serviceID, date string, statuses []string) ([]models.Booking, error)
	getByIDFunc         func(ctx context.Context, id string) (*models.Booking, error)
	createFunc          func(ctx context.Context, b *models.Booking) error
	updateStatusFunc    func(ctx context.Context, id, status string) (*models.Booking, error)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepo) ListForSlotGrid(ctx context.Context, serviceID, date string, statuses []string) ([]models.Booking, error) {
	if m.listForSlotGridFunc != nil {
		return m.listForSlotGridFunc(ctx, serviceID, date, statuses)
	}
	return nil, nil
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil, bookingRepo.ErrNotFound
}

func newTestService(svcRepo *mockServiceRepo, bkRepo *mockBookingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		ServiceRepo: svcRepo,
		BookingRepo: bkRepo,
		Engine:      availability.NewEngine([]string{"09:00", "10:00", "11:00"}),
		Logger:      zap.NewNop(),
	}
}

func activeService() *models.Service {
	return &models.Service{ID: "s1", Name: "Manicure", Price: 45, IsActive: true}
}

func TestCreateBooking_SnapshotsPriceAndDefaults(t *testing.T) {
	var created *models.Booking
	svcRepo := &mockServiceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Service, error) {
			return activeService(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		createFunc: func(ctx context.Context, b *models.Booking) error {
			created = b
			return nil
		},
	}

	svc := newTestService(svcRepo, bkRepo)
	booking, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", Date: "2026-09-01", Time: "10:00", Notes: "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil || booking.ID == "" {
		t.Fatal("expected booking to be created with a server-assigned ID")
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("expected pending status, got %s", booking.Status)
	}
	if booking.TotalPrice != 45 {
		t.Errorf("expected price snapshot 45, got %v", booking.TotalPrice)
	}
}

func TestCreateBooking_RejectsOccupiedSlot(t *testing.T) {
	svcRepo := &mockServiceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Service, error) {
			return activeService(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		listForSlotGridFunc: func(ctx context.Context, serviceID, date string, statuses []string) ([]models.Booking, error) {
			return []models.Booking{{ID: "b1", BookingTime: "10:00", Status: models.BookingStatusConfirmed}}, nil
		},
	}

	svc := newTestService(svcRepo, bkRepo)
	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", Date: "2026-09-01", Time: "10:00",
	})
	if ErrCode(err) != CodeSlotTaken {
		t.Fatalf("expected slotTaken error, got %v", err)
	}
}

func TestCreateBooking_MapsIndexCollisionToSlotTaken(t *testing.T) {
	// The pre-insert availability check can race; the unique index collision
	// must map to the same rejection.
	svcRepo := &mockServiceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Service, error) {
			return activeService(), nil
		},
	}
	bkRepo := &mockBookingRepo{
		createFunc: func(ctx context.Context, b *models.Booking) error {
			return bookingRepo.ErrSlotTaken
		},
	}

	svc := newTestService(svcRepo, bkRepo)
	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", Date: "2026-09-01", Time: "09:00",
	})
	if ErrCode(err) != CodeSlotTaken {
		t.Fatalf("expected slotTaken error, got %v", err)
	}
}

func TestCreateBooking_RejectsOffGridTimeAndBadDate(t *testing.T) {
	svc := newTestService(&mockServiceRepo{}, &mockBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", Date: "2026-09-01", Time: "08:30",
	})
	if ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for off-grid time, got %v", err)
	}

	_, err = svc.CreateBooking(context.Background(), CreateBookingInput{
		UserID: "u1", ServiceID: "s1", Date: "01.09.2026", Time: "09:00",
	})
	if ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for bad date, got %v", err)
	}
}

func TestCancelBooking_AllowedTransitions(t *testing.T) {
	for _, status := range []string{models.BookingStatusPending, models.BookingStatusConfirmed} {
		bkRepo := &mockBookingRepo{
			getByIDFunc: func(ctx context.Context, id string) (*models.Booking, error) {
				return &models.Booking{ID: id, UserID: "u1", Status: status}, nil
			},
			updateStatusFunc: func(ctx context.Context, id, newStatus string) (*models.Booking, error) {
				return &models.Booking{ID: id, UserID: "u1", Status: newStatus}, nil
			},
		}

		svc := newTestService(&mockServiceRepo{}, bkRepo)
		booking, err := svc.CancelBooking(context.Background(), "b1", "u1")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", status, err)
		}
		if booking.Status != models.BookingStatusCancelled {
			t.Errorf("%s: expected cancelled, got %s", status, booking.Status)
		}
	}
}

func TestCancelBooking_AlreadyCancelledIsNoOpSuccess(t *testing.T) {
	updateCalled := false
	bkRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: "u1", Status: models.BookingStatusCancelled}, nil
		},
		updateStatusFunc: func(ctx context.Context, id, status string) (*models.Booking, error) {
			updateCalled = true
			return nil, errors.New("must not be called")
		},
	}

	svc := newTestService(&mockServiceRepo{}, bkRepo)
	booking, err := svc.CancelBooking(context.Background(), "b1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingStatusCancelled {
		t.Errorf("expected status to remain cancelled, got %s", booking.Status)
	}
	if updateCalled {
		t.Error("cancel of a cancelled booking must not issue a status update")
	}
}

func TestCancelBooking_CompletedIsRejected(t *testing.T) {
	bkRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: "u1", Status: models.BookingStatusCompleted}, nil
		},
	}

	svc := newTestService(&mockServiceRepo{}, bkRepo)
	_, err := svc.CancelBooking(context.Background(), "b1", "u1")
	if ErrCode(err) != CodeInvalidTransition {
		t.Fatalf("expected invalidTransition error, got %v", err)
	}
}

func TestCancelBooking_OwnershipEnforced(t *testing.T) {
	bkRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, UserID: "someone-else", Status: models.BookingStatusPending}, nil
		},
	}

	svc := newTestService(&mockServiceRepo{}, bkRepo)
	_, err := svc.CancelBooking(context.Background(), "b1", "u1")
	if ErrCode(err) != CodeNotOwner {
		t.Fatalf("expected notOwner error, got %v", err)
	}
}
