package store

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRecordConsumptionDecrementsItem(t *testing.T) {
	s := New()
	item := s.CreateItem(InventoryItem{Name: "gloves", Quantity: dec("10.5"), MinQuantity: 2, Unit: "box"})

	c := s.RecordConsumption(InventoryConsumption{
		ItemID:   item.ID,
		Quantity: dec("0.25"),
		UsedBy:   1,
	})

	if c.ID == 0 {
		t.Fatal("consumption record got no id")
	}
	if c.UsedAt.IsZero() {
		t.Error("usedAt was not stamped")
	}
	if got, _ := s.Consumptions.Get(c.ID); got.ID != c.ID {
		t.Error("consumption record not retrievable after create")
	}

	after, _ := s.Items.Get(item.ID)
	if want := dec("10.25"); !after.Quantity.Equal(want) {
		t.Errorf("item quantity = %s, want %s", after.Quantity, want)
	}
}

func TestRecordConsumptionDanglingItem(t *testing.T) {
	s := New()
	existing := s.CreateItem(InventoryItem{Name: "gloves", Quantity: dec("10"), Unit: "box"})

	c := s.RecordConsumption(InventoryConsumption{
		ItemID:   existing.ID + 100,
		Quantity: dec("3"),
		UsedBy:   1,
	})

	// The record is created even though the reference dangles.
	if _, ok := s.Consumptions.Get(c.ID); !ok {
		t.Fatal("consumption referencing a missing item was not recorded")
	}
	// And no item is touched.
	after, _ := s.Items.Get(existing.ID)
	if !after.Quantity.Equal(dec("10")) {
		t.Errorf("unrelated item quantity changed to %s", after.Quantity)
	}
}

func TestRecordConsumptionConcurrent(t *testing.T) {
	s := New()
	const start = 500
	const n = 200

	item := s.CreateItem(InventoryItem{Name: "needles", Quantity: decimal.NewFromInt(start), Unit: "piece"})

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.RecordConsumption(InventoryConsumption{
				ItemID:   item.ID,
				Quantity: decimal.NewFromInt(1),
				UsedBy:   1,
			})
		}()
	}
	wg.Wait()

	after, _ := s.Items.Get(item.ID)
	if want := decimal.NewFromInt(start - n); !after.Quantity.Equal(want) {
		t.Errorf("quantity after %d concurrent consumptions = %s, want %s", n, after.Quantity, want)
	}
	if s.Consumptions.Len() != n {
		t.Errorf("recorded %d consumptions, want %d", s.Consumptions.Len(), n)
	}
}

func TestCreateStampsTimestamps(t *testing.T) {
	s := New()
	fixed := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	u := s.CreateUser(User{Username: "u", FullName: "U", Role: RoleDoctor})
	if !u.CreatedAt.Equal(fixed) {
		t.Errorf("user createdAt = %v, want %v", u.CreatedAt, fixed)
	}

	p := s.CreatePatient(Patient{FullName: "P", PhoneNumber: "1"})
	if !p.CreatedAt.Equal(fixed) {
		t.Errorf("patient createdAt = %v, want %v", p.CreatedAt, fixed)
	}

	m := s.CreateMessage(WhatsappMessage{MessageType: MessageTypeFollowup, Message: "hi", Status: MessageStatusSent, SentBy: u.ID})
	if !m.SentAt.Equal(fixed) {
		t.Errorf("message sentAt = %v, want %v", m.SentAt, fixed)
	}
}

func TestSeedLoadsBootstrapData(t *testing.T) {
	s := New()
	s.Seed()

	if s.Users.Len() != 6 {
		t.Errorf("seeded %d users, want 6", s.Users.Len())
	}
	admin, ok := s.Users.Find(func(u User) bool { return u.Username == "admin" })
	if !ok || admin.Role != RoleManager {
		t.Errorf("default admin missing or not a manager: %+v", admin)
	}
	if s.Patients.Len() != 7 || s.Services.Len() != 4 || s.Items.Len() != 4 {
		t.Errorf("unexpected seed counts: patients=%d services=%d items=%d",
			s.Patients.Len(), s.Services.Len(), s.Items.Len())
	}

	// Seed consumptions must have decremented stock.
	composite, _ := s.Items.Get(1)
	if !composite.Quantity.Equal(dec("1")) {
		t.Errorf("composite stock after seed = %s, want 1", composite.Quantity)
	}
}
