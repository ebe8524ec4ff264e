package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/shinewhite/clinic_backend/internal/service/analytics"
	"github.com/shinewhite/clinic_backend/internal/service/appointment"
	"github.com/shinewhite/clinic_backend/internal/service/catalog"
	"github.com/shinewhite/clinic_backend/internal/service/finance"
	"github.com/shinewhite/clinic_backend/internal/service/inventory"
	"github.com/shinewhite/clinic_backend/internal/service/patient"
	"github.com/shinewhite/clinic_backend/internal/service/treatment"
	"github.com/shinewhite/clinic_backend/internal/service/user"
	whatsappsvc "github.com/shinewhite/clinic_backend/internal/service/whatsapp"
	"github.com/shinewhite/clinic_backend/internal/store"
	"github.com/shinewhite/clinic_backend/pkg/email"
	whatsapppkg "github.com/shinewhite/clinic_backend/pkg/whatsapp"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvidePatientService,
		ProvideCatalogService,
		ProvideAppointmentService,
		ProvideInventoryService,
		ProvideTreatmentService,
		ProvideFinanceService,
		ProvideWhatsappService,
		ProvideAnalyticsService,
	),
)

func ProvideUserService(s *store.Store) user.Service {
	return user.New(s)
}

func ProvidePatientService(s *store.Store) patient.Service {
	return patient.New(s)
}

func ProvideCatalogService(s *store.Store) catalog.Service {
	return catalog.New(s)
}

func ProvideAppointmentService(s *store.Store) appointment.Service {
	return appointment.New(s)
}

func ProvideInventoryService(s *store.Store, mailer *email.Client) inventory.Service {
	return inventory.New(s, mailer, slog.Default())
}

func ProvideTreatmentService(s *store.Store) treatment.Service {
	return treatment.New(s)
}

func ProvideFinanceService(s *store.Store) finance.Service {
	return finance.New(s)
}

func ProvideWhatsappService(s *store.Store, gateway *whatsapppkg.Client) whatsappsvc.Service {
	return whatsappsvc.New(s, gateway, slog.Default())
}

func ProvideAnalyticsService(s *store.Store) analytics.Service {
	return analytics.New(s)
}
