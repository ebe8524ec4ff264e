package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/shinewhite/clinic_backend/config"
	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/internal/api/http/middleware"
	"github.com/shinewhite/clinic_backend/internal/service/analytics"
	"github.com/shinewhite/clinic_backend/internal/service/appointment"
	"github.com/shinewhite/clinic_backend/internal/service/catalog"
	"github.com/shinewhite/clinic_backend/internal/service/finance"
	"github.com/shinewhite/clinic_backend/internal/service/inventory"
	"github.com/shinewhite/clinic_backend/internal/service/patient"
	"github.com/shinewhite/clinic_backend/internal/service/treatment"
	"github.com/shinewhite/clinic_backend/internal/service/user"
	"github.com/shinewhite/clinic_backend/internal/service/whatsapp"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
	"github.com/shinewhite/clinic_backend/pkg/session"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg      *config.Config
	Auth     authorize.IAuthorization
	Sessions session.Store

	UserSvc        user.Service
	PatientSvc     patient.Service
	CatalogSvc     catalog.Service
	AppointmentSvc appointment.Service
	InventorySvc   inventory.Service
	TreatmentSvc   treatment.Service
	FinanceSvc     finance.Service
	WhatsappSvc    whatsapp.Service
	AnalyticsSvc   analytics.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	sessionRequired := middleware.SessionRequired(r.p.Sessions, r.p.Cfg.Session.CookieName)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.UserSvc, r.p.Sessions, r.p.Cfg.Session)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	catalogH := handler.NewCatalogHandler(r.p.CatalogSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc)
	treatmentH := handler.NewTreatmentHandler(r.p.TreatmentSvc)
	financeH := handler.NewFinanceHandler(r.p.FinanceSvc)
	whatsappH := handler.NewWhatsappHandler(r.p.WhatsappSvc)
	analyticsH := handler.NewAnalyticsHandler(r.p.AnalyticsSvc)

	api := app.Group("/api")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, sessionRequired)
	r.registerUserRoutes(api, userH, sessionRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, sessionRequired)
	r.registerServiceRoutes(api, catalogH, sessionRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, sessionRequired)
	r.registerInventoryRoutes(api, inventoryH, sessionRequired, requirePerm)
	r.registerTreatmentRoutes(api, treatmentH, sessionRequired, requirePerm)
	r.registerFinanceRoutes(api, financeH, sessionRequired, requirePerm)
	r.registerWhatsappRoutes(api, whatsappH, sessionRequired, requirePerm)
	r.registerAnalyticsRoutes(api, analyticsH, sessionRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
