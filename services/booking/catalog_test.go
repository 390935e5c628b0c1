package booking

import (
	"context"
	"testing"

	"salonbook/models"
)

func TestCreateService_AssignsIDAndActivates(t *testing.T) {
	var created *models.Service
	svcRepo := &mockServiceRepo{
		createFunc: func(ctx context.Context, svc *models.Service) error {
			created = svc
			return nil
		},
	}
	s := newTestService(svcRepo, &mockBookingRepo{})

	svc, err := s.CreateService(context.Background(), CreateServiceInput{
		Name:     "Pedicure",
		Price:    55,
		Duration: 45,
		Category: "nails",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ID == "" {
		t.Fatal("expected a generated service ID")
	}
	if !svc.IsActive {
		t.Fatal("new services must be active")
	}
	if svc.CreatedAt.IsZero() || svc.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestCreateService_RejectsInvalidInput(t *testing.T) {
	s := newTestService(&mockServiceRepo{}, &mockBookingRepo{})

	cases := []struct {
		name  string
		input CreateServiceInput
	}{
		{"missing name", CreateServiceInput{Price: 10, Duration: 30}},
		{"zero price", CreateServiceInput{Name: "Cut", Price: 0, Duration: 30}},
		{"zero duration", CreateServiceInput{Name: "Cut", Price: 10, Duration: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateService(context.Background(), tc.input)
			if ErrCode(err) != CodeInvalidInput {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestUpdateService_PartialUpdateKeepsOtherFields(t *testing.T) {
	var saved *models.Service
	svcRepo := &mockServiceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Service, error) {
			return &models.Service{ID: id, Name: "Manicure", Price: 45, Duration: 30, Category: "nails", IsActive: true}, nil
		},
		updateFunc: func(ctx context.Context, svc *models.Service) error {
			saved = svc
			return nil
		},
	}
	s := newTestService(svcRepo, &mockBookingRepo{})

	price := 50.0
	svc, err := s.UpdateService(context.Background(), "s1", UpdateServiceInput{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Price != 50 {
		t.Fatalf("expected price update to reach the repository, got %+v", saved)
	}
	if svc.Name != "Manicure" || svc.Duration != 30 {
		t.Fatalf("untouched fields must survive a partial update, got %+v", svc)
	}
}

func TestUpdateService_RejectsBadValues(t *testing.T) {
	s := newTestService(&mockServiceRepo{}, &mockBookingRepo{})

	badPrice := -1.0
	if _, err := s.UpdateService(context.Background(), "s1", UpdateServiceInput{Price: &badPrice}); ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalid input for negative price, got %v", err)
	}
	empty := ""
	svcRepo := &mockServiceRepo{
		getByIDFunc: func(ctx context.Context, id string) (*models.Service, error) {
			return activeService(), nil
		},
	}
	s = newTestService(svcRepo, &mockBookingRepo{})
	if _, err := s.UpdateService(context.Background(), "s1", UpdateServiceInput{Name: &empty}); ErrCode(err) != CodeInvalidInput {
		t.Fatalf("expected invalid input for empty name, got %v", err)
	}
}

func TestSetServiceActive_ReachesRepository(t *testing.T) {
	var gotID string
	var gotActive bool
	svcRepo := &mockServiceRepo{
		setActiveFunc: func(ctx context.Context, id string, active bool) error {
			gotID, gotActive = id, active
			return nil
		},
	}
	s := newTestService(svcRepo, &mockBookingRepo{})

	if err := s.SetServiceActive(context.Background(), "s1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "s1" || gotActive != false {
		t.Fatalf("expected deactivation of s1, got %s / %v", gotID, gotActive)
	}
}
