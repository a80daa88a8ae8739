package routes

import (
	"bookwise-backend/config"
	"bookwise-backend/controllers"
	"bookwise-backend/services"
	"bookwise-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, appointments *services.AppointmentService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(db, cfg)
	serviceController := controllers.NewServiceController(db)
	availabilityController := controllers.NewAvailabilityController(services.NewAvailabilityService(db))
	appointmentController := controllers.NewAppointmentController(appointments)
	publicController := controllers.NewPublicController(db, appointments)
	analyticsController := controllers.NewAnalyticsController(services.NewAnalyticsService(db))
	reminderController := controllers.NewReminderController(db)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware(cfg.JWTSecret))
		auth.GET("/me", authController.Me)
		auth.PUT("/profile", authController.UpdateProfile)
	}

	// Public booking surface, no auth
	public := r.Group("/api/public")
	{
		public.GET("/booking/:businessId", publicController.GetBookingProfile)
		public.POST("/booking/:businessId/appointments", publicController.CreatePublicAppointment)
		public.POST("/appointments/confirm/:token", publicController.ConfirmAppointment)
		public.POST("/appointments/cancel/:token", publicController.CancelAppointment)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg.JWTSecret))
	{
		// Service catalog routes
		svc := api.Group("/services")
		{
			svc.POST("", serviceController.CreateService)
			svc.GET("", serviceController.GetServices)
			svc.GET("/:id", serviceController.GetService)
			svc.PUT("/:id", serviceController.UpdateService)
			svc.DELETE("/:id", serviceController.DeleteService)
		}

		// Availability routes
		availability := api.Group("/availability")
		{
			availability.POST("", availabilityController.CreateAvailability)
			availability.GET("", availabilityController.GetAvailability)
			availability.PUT("/:id", availabilityController.UpdateAvailability)
			availability.DELETE("/:id", availabilityController.DeleteAvailability)
		}

		// Appointment routes
		appts := api.Group("/appointments")
		{
			appts.POST("", appointmentController.CreateAppointment)
			appts.GET("", appointmentController.GetAppointments)
			appts.GET("/date-range", appointmentController.GetAppointmentsByDateRange)
			appts.GET("/:id", appointmentController.GetAppointment)
			appts.PUT("/:id/status", appointmentController.UpdateAppointmentStatus)
			appts.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Analytics routes
		api.GET("/analytics", analyticsController.GetAnalytics)

		// Reminder audit trail
		api.GET("/reminders/logs", reminderController.GetReminderLogs)
	}

	return r
}
