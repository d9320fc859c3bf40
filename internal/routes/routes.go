package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	"github.com/pawclinic/vet-scheduler/internal/config"
	"github.com/pawclinic/vet-scheduler/internal/handlers"
	infraCache "github.com/pawclinic/vet-scheduler/internal/infra/cache"
	infraRepo "github.com/pawclinic/vet-scheduler/internal/infra/repository"
	"github.com/pawclinic/vet-scheduler/internal/logger"
	"github.com/pawclinic/vet-scheduler/internal/middleware"
	"github.com/pawclinic/vet-scheduler/internal/reminder"
	ucAppointment "github.com/pawclinic/vet-scheduler/internal/usecase/appointment"
	ucStats "github.com/pawclinic/vet-scheduler/internal/usecase/stats"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine and returns the reminder dispatcher so main can schedule it.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) *reminder.Dispatcher {

	tz := cfg.ClinicTimezone

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	statsRepo := infraRepo.NewStatsGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Dashboard caching is best effort: when Redis is unreachable the
	// interface stays nil and every request hits the database.
	var statsCache ucStats.Cache
	if rc := infraCache.NewRedisCache(cfg); rc != nil {
		statsCache = rc
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, tz)
	bookingUC := ucAppointment.NewCreateAppointmentIdempotent(appointmentRepo, createUC)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher, tz)
	transitionUC := ucAppointment.NewTransitionAppointment(appointmentRepo, auditDispatcher, tz)
	batchUC := ucAppointment.NewBatchTransition(appointmentRepo, auditDispatcher, tz)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	scheduleUC := ucAppointment.NewListSchedule(appointmentRepo)
	slotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo)
	weeklyStatsUC := ucAppointment.NewGetWeeklyStats(appointmentRepo)

	// ======================================================
	// USE CASES — DASHBOARD
	// ======================================================
	dashboardUC := ucStats.NewGetDashboard(statsRepo, statsCache, cfg.StatsCacheTTL, tz)

	// ======================================================
	// REMINDERS
	// ======================================================
	registry := reminder.NewRegistry()
	registry.Register("log", reminder.LogStrategy(logger.Get()))
	registry.Register("email", reminder.EmailStrategy(logger.Get()))

	reminderDispatcher := reminder.NewDispatcher(appointmentRepo, registry, tz)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	ownerHandler := handlers.NewOwnerHandler(db)
	petHandler := handlers.NewPetHandler(db, tz)
	vetHandler := handlers.NewVetHandler(db)
	visitHandler := handlers.NewVisitHandler(db, tz)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		transitionUC,
		batchUC,
		deleteUC,
		scheduleUC,
		tz,
	)

	scheduleHandler := handlers.NewScheduleHandler(scheduleUC, slotsUC, weeklyStatsUC, tz)
	statsHandler := handlers.NewStatsHandler(dashboardUC)
	reminderHandler := handlers.NewReminderHandler(reminderDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, bookingUC, slotsUC, tz)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/vets", publicHandler.ListVets)
			publicAPI.GET("/vets/:id/available-slots", publicHandler.AvailableSlots)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// OWNERS / PETS / VISITS
			// ------------------------------
			secured.GET("/owners", ownerHandler.List)
			secured.POST("/owners", ownerHandler.Create)
			secured.GET("/owners/:id", ownerHandler.GetByID)
			secured.PUT("/owners/:id", ownerHandler.Update)
			secured.GET("/owners/:id/appointments", scheduleHandler.ByOwner)
			secured.POST("/owners/:id/pets", petHandler.Create)

			secured.GET("/pets/:id", petHandler.GetByID)
			secured.PUT("/pets/:id", petHandler.Update)
			secured.POST("/pets/:id/visits", visitHandler.Create)
			secured.GET("/pets/:id/visits", visitHandler.ListByPet)
			secured.PUT("/pets/:id/visits/:visitId", visitHandler.Update)
			secured.DELETE("/pets/:id/visits/:visitId", visitHandler.Delete)

			// ------------------------------
			// VETS
			// ------------------------------
			secured.GET("/vets", vetHandler.List)
			secured.POST("/vets", vetHandler.Create)
			secured.GET("/vets/:id", vetHandler.GetByID)
			secured.GET("/vets/:id/schedule", scheduleHandler.ByVetAndDate)
			secured.GET("/vets/:id/week", scheduleHandler.ByVetAndWeek)
			secured.GET("/vets/:id/available-slots", scheduleHandler.AvailableSlots)
			secured.GET("/vets/:id/weekly-stats", scheduleHandler.WeeklyStats)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/day", scheduleHandler.ByDate)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/batch-confirm", appointmentHandler.BatchConfirm)
			secured.POST("/appointments/batch-cancel", appointmentHandler.BatchCancel)

			// ------------------------------
			// DASHBOARD / OPS
			// ------------------------------
			secured.GET("/stats/dashboard", statsHandler.Dashboard)
			secured.POST("/reminders/run", reminderHandler.Run)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return reminderDispatcher
}
