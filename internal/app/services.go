package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/aramhealth/hms_backend/internal/repo"
	"github.com/aramhealth/hms_backend/internal/service/department"
	"github.com/aramhealth/hms_backend/internal/service/doctor"
	"github.com/aramhealth/hms_backend/internal/service/partner"
	"github.com/aramhealth/hms_backend/internal/service/patient"
	"github.com/aramhealth/hms_backend/internal/service/patientlog"
	"github.com/aramhealth/hms_backend/internal/service/report"
	"github.com/aramhealth/hms_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideDepartmentService,
		ProvideDoctorService,
		ProvidePatientService,
		ProvidePatientLogService,
		ProvidePartnerService,
		ProvideReportService,
	),
)

func ProvideDepartmentService(db *repo.Client) department.Service {
	return department.New(db)
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvidePatientLogService(db *repo.Client) patientlog.Service {
	return patientlog.New(db)
}

func ProvidePartnerService(db *repo.Client, emailClient *email.Client) partner.Service {
	return partner.New(db, emailClient)
}

func ProvideReportService(db *repo.Client, rdb *redis.Client, emailClient *email.Client) report.Service {
	return report.New(db, rdb, emailClient)
}
