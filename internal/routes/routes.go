package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pos-booking/internal/audit"
	"github.com/BruksfildServices01/pos-booking/internal/config"
	"github.com/BruksfildServices01/pos-booking/internal/handlers"
	"github.com/BruksfildServices01/pos-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/pos-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pos-booking/internal/metrics"
	"github.com/BruksfildServices01/pos-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/pos-booking/internal/usecase/appointment"
)

// Deps are the process singletons the routes are built from.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Locker  lock.Locker
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics
	Log     zerolog.Logger

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler

	// Now overrides the clock of the use cases.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log, d.Metrics))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(d.MetricsHandler))
	}

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB, d.Locker)
	staffRepo := infraRepo.NewStaffGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)

	opts := ucAppointment.Options{
		GranularityMin:     cfg.SlotGranularityMin,
		FallbackServiceMin: cfg.FallbackServiceMin,
		Timezone:           cfg.Timezone,
		Now:                d.Now,
	}

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		staffRepo,
		catalogRepo,
		appointmentRepo,
		d.Metrics,
		d.Log.With().Str("component", "availability").Logger(),
		opts,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		staffRepo,
		catalogRepo,
		appointmentRepo,
		d.Audit,
		d.Metrics,
		d.Log.With().Str("component", "booking").Logger(),
		opts,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		d.Audit,
		d.Metrics,
		d.Log.With().Str("component", "lifecycle").Logger(),
		opts,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, opts)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		createAppointmentUC,
		updateStatusUC,
		listAppointmentsUC,
		getAppointmentUC,
		cfg.Timezone,
	)

	staffHandler := handlers.NewStaffHandler(staffRepo)
	serviceHandler := handlers.NewServiceHandler(catalogRepo)
	businessHandler := handlers.NewBusinessHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/business", businessHandler.Get)
		api.PATCH("/business", businessHandler.Update)

		// ------------------------------
		// STAFF + CATALOG
		// ------------------------------
		api.POST("/staff", staffHandler.Create)
		api.GET("/staff/:staffId/working-hours", staffHandler.GetWorkingHours)
		api.PUT("/staff/:staffId/working-hours", staffHandler.UpdateWorkingHours)
		api.GET("/staff/:staffId/availability", appointmentHandler.Availability)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
