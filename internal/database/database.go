package database

import (
	"fmt"

	"github.com/devakalpa1/DeckOracle/internal/config"
	logging "github.com/devakalpa1/DeckOracle/internal/logging"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.Deck{},
		&models.Card{},
		&models.StudySession{},
		&models.CardOutcome{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// Analytics scans outcomes per user/deck/date range; cover that path.
	outcomeIndex := `CREATE INDEX IF NOT EXISTS idx_outcomes_query ON card_outcomes (user_id, card_id, recorded_at DESC);`
	if err := DB.Exec(outcomeIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on card_outcomes table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
