package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/shinewhite/clinic_backend/internal/store"
)

func seedPatients(t *testing.T) (*store.Store, Service) {
	t.Helper()
	s := store.New()
	s.CreatePatient(store.Patient{FullName: "Ahmed Mohamed Ali", PhoneNumber: "01012345678"})
	s.CreatePatient(store.Patient{FullName: "Fatma Hassan", PhoneNumber: "01187654321"})
	s.CreatePatient(store.Patient{FullName: "Mohamed Saleh", PhoneNumber: "01255554444"})
	return s, New(s)
}

func TestCreate(t *testing.T) {
	_, svc := seedPatients(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePatientRequest{
		FullName:    "Laila Omar",
		PhoneNumber: "000",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("ID = %d, want 4", created.ID)
	}
	// Contact strings are stored as entered, however odd.
	if created.PhoneNumber != "000" {
		t.Errorf("PhoneNumber = %q", created.PhoneNumber)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
}

func TestCreateRequiresNameAndPhone(t *testing.T) {
	_, svc := seedPatients(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreatePatientRequest{PhoneNumber: "0100"}); !errors.Is(err, ErrInvalidPatientData) {
		t.Errorf("missing name: got %v", err)
	}
	if _, err := svc.Create(ctx, CreatePatientRequest{FullName: "X"}); !errors.Is(err, ErrInvalidPatientData) {
		t.Errorf("missing phone: got %v", err)
	}
}

func TestSearch(t *testing.T) {
	_, svc := seedPatients(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name case-insensitive", "mohamed", []string{"Ahmed Mohamed Ali", "Mohamed Saleh"}},
		{"phone substring", "0118", []string{"Fatma Hassan"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, p := range got {
				if p.FullName != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, p.FullName, tt.want[i])
				}
			}
		})
	}

	if _, err := svc.Search(ctx, ""); !errors.Is(err, ErrEmptySearchQuery) {
		t.Errorf("empty query: got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	_, svc := seedPatients(t)
	ctx := context.Background()

	notes := "allergic to penicillin"
	updated, err := svc.Update(ctx, 2, UpdatePatientRequest{Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Notes != notes {
		t.Errorf("Notes = %q", updated.Notes)
	}
	// Untouched fields survive.
	if updated.FullName != "Fatma Hassan" || updated.PhoneNumber != "01187654321" {
		t.Errorf("unexpected overwrite: %+v", updated)
	}
}

func TestUpdateMissingPatient(t *testing.T) {
	_, svc := seedPatients(t)
	ctx := context.Background()

	name := "X"
	if _, err := svc.Update(ctx, 42, UpdatePatientRequest{FullName: &name}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	_, svc := seedPatients(t)
	ctx := context.Background()

	p, err := svc.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.FullName != "Ahmed Mohamed Ali" {
		t.Errorf("FullName = %q", p.FullName)
	}

	if _, err := svc.GetByID(ctx, 404); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("missing patient: got %v", err)
	}
}
