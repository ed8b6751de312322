package db

import (
	"wedding-marketplace-api/logger"
	"wedding-marketplace-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
	)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to run migrations")
	}

	logger.Log.Info().Msg("migrations applied")
}
