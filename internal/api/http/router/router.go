package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/aramhealth/hms_backend/config"
	"github.com/aramhealth/hms_backend/internal/api/http/handler"
	"github.com/aramhealth/hms_backend/internal/api/http/middleware"
	"github.com/aramhealth/hms_backend/internal/repo"
	"github.com/aramhealth/hms_backend/internal/service/department"
	"github.com/aramhealth/hms_backend/internal/service/doctor"
	"github.com/aramhealth/hms_backend/internal/service/partner"
	"github.com/aramhealth/hms_backend/internal/service/patient"
	"github.com/aramhealth/hms_backend/internal/service/patientlog"
	"github.com/aramhealth/hms_backend/internal/service/report"
	"github.com/aramhealth/hms_backend/pkg/authorize"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	Auth          authorize.IAuthorization
	DB            *repo.Client
	DepartmentSvc department.Service
	DoctorSvc     doctor.Service
	PatientSvc    patient.Service
	PatientLogSvc patientlog.Service
	PartnerSvc    partner.Service
	ReportSvc     report.Service
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
	actorRequired := middleware.ActorRequired()

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	departmentH := handler.NewDepartmentHandler(r.p.DepartmentSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.PatientLogSvc)
	partnerH := handler.NewPartnerHandler(r.p.PartnerSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)
	rbacH := handler.NewRBACHandler(r.p.Auth)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerDepartmentRoutes(api, departmentH, actorRequired, requirePerm)
	r.registerDoctorRoutes(api, doctorH, actorRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, partnerH, reportH, actorRequired, requirePerm)
	r.registerPartnerRoutes(api, partnerH, actorRequired, requirePerm)
	r.registerRBACRoutes(api, rbacH, actorRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
