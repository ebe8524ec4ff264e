// Package store holds every domain entity in keyed in-memory collections and
// is the sole authority for identity assignment and server-stamped
// timestamps. It performs no input validation; callers are expected to hand
// it well-formed records.
package store

import (
	"time"
)

type Store struct {
	Users        *Collection[User]
	Patients     *Collection[Patient]
	Services     *Collection[Service]
	Items        *Collection[InventoryItem]
	Appointments *Collection[Appointment]
	Plans        *Collection[TreatmentPlan]
	Transactions *Collection[FinancialTransaction]
	Consumptions *Collection[InventoryConsumption]
	Messages     *Collection[WhatsappMessage]

	now func() time.Time
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock builds a store with a fixed clock source. Aggregation
// tests use it to pin the reporting window.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		Users:        NewCollection[User](),
		Patients:     NewCollection[Patient](),
		Services:     NewCollection[Service](),
		Items:        NewCollection[InventoryItem](),
		Appointments: NewCollection[Appointment](),
		Plans:        NewCollection[TreatmentPlan](),
		Transactions: NewCollection[FinancialTransaction](),
		Consumptions: NewCollection[InventoryConsumption](),
		Messages:     NewCollection[WhatsappMessage](),

		now: now,
	}
}

// Now is the store's clock. Tests swap it to pin aggregation windows.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) CreateUser(u User) User {
	return s.Users.Create(func(id int64) User {
		u.ID = id
		u.CreatedAt = s.now()
		return u
	})
}

func (s *Store) CreatePatient(p Patient) Patient {
	return s.Patients.Create(func(id int64) Patient {
		p.ID = id
		p.CreatedAt = s.now()
		return p
	})
}

func (s *Store) CreateService(svc Service) Service {
	return s.Services.Create(func(id int64) Service {
		svc.ID = id
		return svc
	})
}

func (s *Store) CreateItem(it InventoryItem) InventoryItem {
	return s.Items.Create(func(id int64) InventoryItem {
		it.ID = id
		return it
	})
}

func (s *Store) CreateAppointment(a Appointment) Appointment {
	return s.Appointments.Create(func(id int64) Appointment {
		a.ID = id
		a.CreatedAt = s.now()
		return a
	})
}

func (s *Store) CreatePlan(p TreatmentPlan) TreatmentPlan {
	return s.Plans.Create(func(id int64) TreatmentPlan {
		p.ID = id
		p.CreatedAt = s.now()
		return p
	})
}

func (s *Store) CreateTransaction(t FinancialTransaction) FinancialTransaction {
	return s.Transactions.Create(func(id int64) FinancialTransaction {
		t.ID = id
		return t
	})
}

// RecordConsumption creates the consumption record and decrements the
// referenced item's quantity. The decrement runs inside the item collection's
// write lock, so parallel consumptions against the same item serialize and
// none is lost. A consumption referencing a missing item is still recorded;
// the decrement is skipped silently.
func (s *Store) RecordConsumption(c InventoryConsumption) InventoryConsumption {
	created := s.Consumptions.Create(func(id int64) InventoryConsumption {
		c.ID = id
		c.UsedAt = s.now()
		return c
	})

	s.Items.Update(created.ItemID, func(it InventoryItem) InventoryItem {
		it.Quantity = it.Quantity.Sub(created.Quantity)
		return it
	})

	return created
}

func (s *Store) CreateMessage(m WhatsappMessage) WhatsappMessage {
	return s.Messages.Create(func(id int64) WhatsappMessage {
		m.ID = id
		m.SentAt = s.now()
		return m
	})
}
