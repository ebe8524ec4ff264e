// Package analytics computes reporting aggregates over the store. Every
// call scans fresh; nothing is cached or incrementally maintained, so a
// report can never disagree with the data it was computed from.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
)

const monthWindow = 12

type RevenuePoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type GrowthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type StatusCount struct {
	Status store.AppointmentStatus `json:"status"`
	Count  int                     `json:"count"`
}

type ConsumptionStat struct {
	Item     string          `json:"item"`
	Quantity decimal.Decimal `json:"quantity"`
}

type DashboardStats struct {
	AppointmentsToday    int             `json:"appointmentsToday"`
	NewPatientsThisMonth int             `json:"newPatientsThisMonth"`
	LowStockItems        int             `json:"lowStockItems"`
	MonthlyRevenue       decimal.Decimal `json:"monthlyRevenue"`
}

type Service interface {
	// MonthlyRevenue sums income transactions into the trailing twelve
	// calendar months, oldest first.
	MonthlyRevenue(ctx context.Context) ([]RevenuePoint, error)

	// PatientGrowth counts patient registrations per month over the
	// same window.
	PatientGrowth(ctx context.Context) ([]GrowthPoint, error)

	// AppointmentStatusStats counts the three known statuses. Records
	// with any other status are not counted anywhere.
	AppointmentStatusStats(ctx context.Context) ([]StatusCount, error)

	// InventoryConsumptionStats sums consumed quantities grouped by the
	// referenced item's name. Consumptions whose item no longer exists
	// are skipped.
	InventoryConsumptionStats(ctx context.Context) ([]ConsumptionStat, error)

	// Dashboard returns the four headline numbers for the landing page.
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type analyticsService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &analyticsService{store: s}
}

// monthDiff returns how many whole calendar months ago (y, m) is,
// relative to now. 0 means the current month.
func monthDiff(now time.Time, y int, m time.Month) int {
	return (now.Year()-y)*12 + int(now.Month()-m)
}

// monthLabels builds the twelve bucket labels, oldest first.
func monthLabels(now time.Time) []string {
	labels := make([]string, monthWindow)
	for i := monthWindow - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		labels[monthWindow-1-i] = month.Format("Jan")
	}
	return labels
}

func (s *analyticsService) MonthlyRevenue(_ context.Context) ([]RevenuePoint, error) {
	now := s.store.Now()

	points := make([]RevenuePoint, monthWindow)
	for i, label := range monthLabels(now) {
		points[i] = RevenuePoint{Month: label, Revenue: decimal.Zero}
	}

	for _, tx := range s.store.Transactions.List() {
		if tx.Type != "income" {
			continue
		}
		diff := monthDiff(now, tx.Date.Year(), tx.Date.Month())
		if diff < 0 || diff >= monthWindow {
			continue
		}
		idx := monthWindow - 1 - diff
		points[idx].Revenue = points[idx].Revenue.Add(tx.Amount)
	}

	return points, nil
}

func (s *analyticsService) PatientGrowth(_ context.Context) ([]GrowthPoint, error) {
	now := s.store.Now()

	points := make([]GrowthPoint, monthWindow)
	for i, label := range monthLabels(now) {
		points[i] = GrowthPoint{Month: label}
	}

	for _, p := range s.store.Patients.List() {
		diff := monthDiff(now, p.CreatedAt.Year(), p.CreatedAt.Month())
		if diff < 0 || diff >= monthWindow {
			continue
		}
		points[monthWindow-1-diff].Count++
	}

	return points, nil
}

func (s *analyticsService) AppointmentStatusStats(_ context.Context) ([]StatusCount, error) {
	stats := []StatusCount{
		{Status: store.StatusConfirmed},
		{Status: store.StatusPending},
		{Status: store.StatusCancelled},
	}

	for _, a := range s.store.Appointments.List() {
		for i := range stats {
			if stats[i].Status == a.Status {
				stats[i].Count++
				break
			}
		}
	}

	return stats, nil
}

func (s *analyticsService) InventoryConsumptionStats(_ context.Context) ([]ConsumptionStat, error) {
	totals := make(map[string]decimal.Decimal)
	var names []string

	items := store.NewResolver(s.store.Items.Get)
	for _, c := range s.store.Consumptions.List() {
		item := items.Resolve(c.ItemID)
		if item == nil {
			continue
		}
		if _, seen := totals[item.Name]; !seen {
			names = append(names, item.Name)
		}
		totals[item.Name] = totals[item.Name].Add(c.Quantity)
	}

	out := make([]ConsumptionStat, 0, len(names))
	for _, name := range names {
		out = append(out, ConsumptionStat{Item: name, Quantity: totals[name]})
	}

	return out, nil
}

func (s *analyticsService) Dashboard(_ context.Context) (*DashboardStats, error) {
	now := s.store.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	appointmentsToday := len(s.store.Appointments.Filter(func(a store.Appointment) bool {
		return !a.StartTime.Before(dayStart) && a.StartTime.Before(dayEnd)
	}))

	newPatients := len(s.store.Patients.Filter(func(p store.Patient) bool {
		return p.CreatedAt.Year() == now.Year() && p.CreatedAt.Month() == now.Month()
	}))

	lowStock := len(s.store.Items.Filter(func(it store.InventoryItem) bool {
		return it.Quantity.Cmp(decimal.NewFromInt(it.MinQuantity)) <= 0
	}))

	revenue := decimal.Zero
	for _, tx := range s.store.Transactions.List() {
		if tx.Type != "income" {
			continue
		}
		if tx.Date.Year() == now.Year() && tx.Date.Month() == now.Month() {
			revenue = revenue.Add(tx.Amount)
		}
	}

	return &DashboardStats{
		AppointmentsToday:    appointmentsToday,
		NewPatientsThisMonth: newPatients,
		LowStockItems:        lowStock,
		MonthlyRevenue:       revenue,
	}, nil
}
