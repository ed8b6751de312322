package db

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"wedding-marketplace-api/models"
)

// OpenTest opens an in-memory sqlite database with the full schema and
// installs it as the package-level DB. Tests call this instead of Init.
func OpenTest() (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
	); err != nil {
		return nil, err
	}
	DB = database
	return database, nil
}
