package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
)

// fixedNow pins the reporting window to mid-June 2026.
var fixedNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func pinnedStore() *store.Store {
	return store.NewWithClock(func() time.Time { return fixedNow })
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func monthsAgo(n int) time.Time {
	return fixedNow.AddDate(0, -n, 0)
}

func TestMonthlyRevenueBuckets(t *testing.T) {
	s := pinnedStore()
	svc := New(s)
	ctx := context.Background()

	s.CreateTransaction(store.FinancialTransaction{Amount: dec("100"), Type: "income", Date: fixedNow})
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("50"), Type: "income", Date: fixedNow})
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("75"), Type: "income", Date: monthsAgo(11)})
	// Out of window on both sides.
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("999"), Type: "income", Date: monthsAgo(12)})
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("999"), Type: "income", Date: fixedNow.AddDate(0, 1, 0)})
	// Expenses never count.
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("400"), Type: "expense", Date: fixedNow})

	points, err := svc.MonthlyRevenue(ctx)
	if err != nil {
		t.Fatalf("MonthlyRevenue: %v", err)
	}
	if len(points) != 12 {
		t.Fatalf("got %d buckets, want 12", len(points))
	}

	if points[0].Month != "Jul" || points[11].Month != "Jun" {
		t.Errorf("window = %s..%s, want Jul..Jun", points[0].Month, points[11].Month)
	}
	if !points[11].Revenue.Equal(dec("150")) {
		t.Errorf("current month revenue = %s, want 150", points[11].Revenue)
	}
	if !points[0].Revenue.Equal(dec("75")) {
		t.Errorf("oldest month revenue = %s, want 75", points[0].Revenue)
	}
	for i := 1; i < 11; i++ {
		if !points[i].Revenue.IsZero() {
			t.Errorf("bucket %d revenue = %s, want 0", i, points[i].Revenue)
		}
	}
}

func TestPatientGrowthBuckets(t *testing.T) {
	s := pinnedStore()
	svc := New(s)
	ctx := context.Background()

	// CreatePatient stamps createdAt with the pinned clock, so these
	// land in the current month.
	s.CreatePatient(store.Patient{FullName: "A", PhoneNumber: "1"})
	s.CreatePatient(store.Patient{FullName: "B", PhoneNumber: "2"})

	points, err := svc.PatientGrowth(ctx)
	if err != nil {
		t.Fatalf("PatientGrowth: %v", err)
	}
	if len(points) != 12 {
		t.Fatalf("got %d buckets, want 12", len(points))
	}
	if points[11].Count != 2 {
		t.Errorf("current month count = %d, want 2", points[11].Count)
	}
	for i := 0; i < 11; i++ {
		if points[i].Count != 0 {
			t.Errorf("bucket %d count = %d, want 0", i, points[i].Count)
		}
	}
}

func TestAppointmentStatusStats(t *testing.T) {
	s := pinnedStore()
	svc := New(s)
	ctx := context.Background()

	add := func(status store.AppointmentStatus) {
		s.CreateAppointment(store.Appointment{
			PatientID: 1, DoctorID: 1,
			StartTime: fixedNow, EndTime: fixedNow.Add(time.Hour),
			Status: status,
		})
	}
	add(store.StatusConfirmed)
	add(store.StatusConfirmed)
	add(store.StatusPending)
	add(store.StatusCancelled)
	add("rescheduled") // unknown, counted nowhere

	stats, err := svc.AppointmentStatusStats(ctx)
	if err != nil {
		t.Fatalf("AppointmentStatusStats: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("got %d buckets, want 3", len(stats))
	}

	want := map[store.AppointmentStatus]int{
		store.StatusConfirmed: 2,
		store.StatusPending:   1,
		store.StatusCancelled: 1,
	}
	total := 0
	for _, st := range stats {
		if st.Count != want[st.Status] {
			t.Errorf("%s = %d, want %d", st.Status, st.Count, want[st.Status])
		}
		total += st.Count
	}
	if total != 4 {
		t.Errorf("total counted = %d, want 4", total)
	}
}

func TestInventoryConsumptionStatsGroupsByName(t *testing.T) {
	s := pinnedStore()
	svc := New(s)
	ctx := context.Background()

	// Two distinct items sharing a name fold into one row.
	a := s.CreateItem(store.InventoryItem{Name: "Gloves", Quantity: dec("100"), Unit: "box"})
	b := s.CreateItem(store.InventoryItem{Name: "Gloves", Quantity: dec("50"), Unit: "box"})
	c := s.CreateItem(store.InventoryItem{Name: "Masks", Quantity: dec("200"), Unit: "box"})

	s.RecordConsumption(store.InventoryConsumption{ItemID: a.ID, Quantity: dec("2"), UsedBy: 1})
	s.RecordConsumption(store.InventoryConsumption{ItemID: b.ID, Quantity: dec("3.5"), UsedBy: 1})
	s.RecordConsumption(store.InventoryConsumption{ItemID: c.ID, Quantity: dec("1"), UsedBy: 1})
	// Dangling item reference is skipped.
	s.RecordConsumption(store.InventoryConsumption{ItemID: 99, Quantity: dec("7"), UsedBy: 1})

	stats, err := svc.InventoryConsumptionStats(ctx)
	if err != nil {
		t.Fatalf("InventoryConsumptionStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2", len(stats))
	}

	byName := make(map[string]decimal.Decimal)
	for _, st := range stats {
		byName[st.Item] = st.Quantity
	}
	if !byName["Gloves"].Equal(dec("5.5")) {
		t.Errorf("Gloves = %s, want 5.5", byName["Gloves"])
	}
	if !byName["Masks"].Equal(dec("1")) {
		t.Errorf("Masks = %s, want 1", byName["Masks"])
	}
}

func TestDashboard(t *testing.T) {
	s := pinnedStore()
	svc := New(s)
	ctx := context.Background()

	s.CreateAppointment(store.Appointment{PatientID: 1, DoctorID: 1, StartTime: fixedNow, EndTime: fixedNow.Add(time.Hour)})
	s.CreateAppointment(store.Appointment{PatientID: 2, DoctorID: 1, StartTime: fixedNow.AddDate(0, 0, -1), EndTime: fixedNow.AddDate(0, 0, -1).Add(time.Hour)})

	s.CreatePatient(store.Patient{FullName: "New", PhoneNumber: "1"})

	s.CreateItem(store.InventoryItem{Name: "low", Quantity: dec("2"), MinQuantity: 5, Unit: "u"})
	s.CreateItem(store.InventoryItem{Name: "ok", Quantity: dec("9"), MinQuantity: 5, Unit: "u"})

	s.CreateTransaction(store.FinancialTransaction{Amount: dec("300"), Type: "income", Date: fixedNow})
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("100"), Type: "income", Date: monthsAgo(1)})
	s.CreateTransaction(store.FinancialTransaction{Amount: dec("500"), Type: "expense", Date: fixedNow})

	got, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.AppointmentsToday != 1 {
		t.Errorf("AppointmentsToday = %d, want 1", got.AppointmentsToday)
	}
	if got.NewPatientsThisMonth != 1 {
		t.Errorf("NewPatientsThisMonth = %d, want 1", got.NewPatientsThisMonth)
	}
	if got.LowStockItems != 1 {
		t.Errorf("LowStockItems = %d, want 1", got.LowStockItems)
	}
	if !got.MonthlyRevenue.Equal(dec("300")) {
		t.Errorf("MonthlyRevenue = %s, want 300", got.MonthlyRevenue)
	}
}
