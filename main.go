package main

import (
	"fmt"

	"bookwise-backend/config"
	"bookwise-backend/models"
	"bookwise-backend/routes"
	"bookwise-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.SetLogLevel(cfg.LogLevel)

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Availability{},
		&models.Appointment{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	clock := services.SystemClock()
	appointments := services.NewAppointmentService(db)
	notifier := services.NewNotifier(cfg)
	reminders := services.NewReminderService(db, appointments, notifier)

	scheduler := services.NewScheduler(reminders, clock, cfg.ReminderInterval)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start reminder scheduler")
	}
	defer scheduler.Stop()

	r := routes.SetupRouter(db, cfg, appointments)
	printRoutes(r)

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
