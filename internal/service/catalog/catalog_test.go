package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
)

func TestCreateAndList(t *testing.T) {
	svc := New(store.New())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateServiceRequest{
		Name:     "Dental Cleaning",
		Price:    decimal.NewFromInt(300),
		Duration: 30,
		Category: "preventive",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || !list[0].Price.Equal(decimal.NewFromInt(300)) {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := New(store.New())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateServiceRequest{
		Name:     "Whitening",
		Price:    decimal.NewFromInt(1200),
		Duration: 60,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := decimal.NewFromInt(1500)
	updated, err := svc.Update(ctx, created.ID, UpdateServiceRequest{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Price.Equal(price) || updated.Name != "Whitening" || updated.Duration != 60 {
		t.Errorf("unexpected service %+v", updated)
	}

	if _, err := svc.Update(ctx, 33, UpdateServiceRequest{Price: &price}); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("missing service: got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	svc := New(store.New())
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 5); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("missing service: got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(store.New())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateServiceRequest
	}{
		{"missing name", CreateServiceRequest{Price: decimal.NewFromInt(100), Duration: 30}},
		{"zero duration", CreateServiceRequest{Name: "X", Price: decimal.NewFromInt(100)}},
		{"negative price", CreateServiceRequest{Name: "X", Price: decimal.NewFromInt(-1), Duration: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, ErrInvalidServiceData) {
				t.Errorf("got %v", err)
			}
		})
	}
}
