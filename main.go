package main

import (
	"github.com/devakalpa1/DeckOracle/internal/config"
	"github.com/devakalpa1/DeckOracle/internal/database"
	logger "github.com/devakalpa1/DeckOracle/internal/logging"
	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/router"
	"github.com/devakalpa1/DeckOracle/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to initialize configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load the achievement catalog at startup
	catalog, err := models.LoadAchievements("config/achievements.yaml")
	if err != nil {
		log.Fatal("Failed to load achievement catalog", zap.Error(err))
	}

	// Start the daily reminder scheduler
	emailService := services.NewEmailService(log)
	scheduler := services.NewScheduler(log, emailService)
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, catalog)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
