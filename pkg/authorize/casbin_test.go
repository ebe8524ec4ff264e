package authorize

import (
	"context"
	"errors"
	"testing"
)

func TestEnforceRoleGrid(t *testing.T) {
	auth, err := NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name   string
		role   Role
		object Resource
		action Action
		want   bool
	}{
		{"manager lists users", RoleManager, ResourceUser, ActionList, true},
		{"secretary cannot list users", RoleSecretary, ResourceUser, ActionList, false},
		{"manager creates services", RoleManager, ResourceService, ActionCreate, true},
		{"doctor cannot create services", RoleDoctor, ResourceService, ActionCreate, false},
		{"secretary creates inventory", RoleSecretary, ResourceInventory, ActionCreate, true},
		{"nurse cannot update inventory", RoleNurse, ResourceInventory, ActionUpdate, false},
		{"doctor records consumption", RoleDoctor, ResourceConsumption, ActionCreate, true},
		{"nurse records consumption", RoleNurse, ResourceConsumption, ActionCreate, true},
		{"manager cannot record consumption", RoleManager, ResourceConsumption, ActionCreate, false},
		{"doctor creates treatment plans", RoleDoctor, ResourceTreatmentPlan, ActionCreate, true},
		{"secretary reads finances", RoleSecretary, ResourceFinance, ActionRead, true},
		{"nurse cannot read finances", RoleNurse, ResourceFinance, ActionRead, false},
		{"secretary sends whatsapp", RoleSecretary, ResourceWhatsApp, ActionSend, true},
		{"manager reads analytics", RoleManager, ResourceAnalytics, ActionRead, true},
		{"doctor cannot read analytics", RoleDoctor, ResourceAnalytics, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.role, tt.object, tt.action)
			if err != nil {
				t.Fatalf("Enforce: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce(%s, %s, %s) = %v, want %v", tt.role, tt.object, tt.action, got, tt.want)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth, err := NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	ctx := context.Background()

	if err := auth.MustEnforce(ctx, RoleManager, ResourceAnalytics, ActionRead); err != nil {
		t.Errorf("expected manager allowed, got %v", err)
	}
	if err := auth.MustEnforce(ctx, RoleNurse, ResourceAnalytics, ActionRead); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestEnforceRejectsUnknownInputs(t *testing.T) {
	auth, err := NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	ctx := context.Background()

	if _, err := auth.Enforce(ctx, "", ResourceUser, ActionList); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("empty role: got %v", err)
	}
	if _, err := auth.Enforce(ctx, RoleManager, "spaceship", ActionList); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("unknown resource: got %v", err)
	}
	if _, err := auth.Enforce(ctx, RoleManager, ResourceUser, "teleport"); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("unknown action: got %v", err)
	}

	// Unknown roles are not an error, just never allowed.
	allowed, err := auth.Enforce(ctx, "janitor", ResourceUser, ActionList)
	if err != nil || allowed {
		t.Errorf("unknown role: allowed=%v err=%v", allowed, err)
	}
}
