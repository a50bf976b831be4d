package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/audit"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/cache"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/config"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/handlers"
	infraRepo "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/infra/repository"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	ucSchedule "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, gridCache *cache.GridCache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	createAppointmentUC := ucSchedule.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
		gridCache,
	)

	cancelAppointmentUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
		gridCache,
	)

	updateStatusUC := ucSchedule.NewUpdateStatus(
		scheduleRepo,
		auditDispatcher,
		gridCache,
	)

	rescheduleUC := ucSchedule.NewReschedule(
		scheduleRepo,
		auditDispatcher,
		gridCache,
	)

	listByDateUC := ucSchedule.NewListAppointmentsByDate(scheduleRepo)
	listByMonthUC := ucSchedule.NewListAppointmentsByMonth(scheduleRepo)

	buildDayGridUC := ucSchedule.NewBuildDayGrid(scheduleRepo, gridCache)
	findFreeSlotUC := ucSchedule.NewFindFreeSlot(scheduleRepo)
	availabilityUC := ucSchedule.NewGetAvailability(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		updateStatusUC,
		rescheduleUC,
		listByDateUC,
		listByMonthUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		db,
		buildDayGridUC,
		findFreeSlotUC,
	)

	financeHandler := handlers.NewFinanceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		createAppointmentUC,
		availabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API (slug-addressed)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/staff", publicHandler.ListStaff)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)

			secured.GET("/me/services", serviceHandler.List)

			secured.GET("/me/staff", staffHandler.List)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// CALENDAR
			// ------------------------------
			secured.GET("/me/calendar/day", calendarHandler.DayGrid)
			secured.GET("/me/calendar/free-slot", calendarHandler.FreeSlot)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			// ------------------------------
			// OWNER ONLY
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole("owner"))
			{
				owner.PATCH("/me/salon", salonHandler.UpdateMeSalon)

				owner.POST("/me/services", serviceHandler.Create)
				owner.PATCH("/me/services/:id", serviceHandler.Update)

				owner.POST("/me/staff", staffHandler.Create)
				owner.PATCH("/me/staff/:id", staffHandler.Update)

				owner.GET("/me/finance/transactions", financeHandler.List)
				owner.POST("/me/finance/transactions", financeHandler.Create)
				owner.GET("/me/finance/summary", financeHandler.MonthlySummary)

				owner.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
