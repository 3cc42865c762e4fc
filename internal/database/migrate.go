package database

import (
	"gorm.io/gorm"

	"stagelink_backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Internship{},
		&models.Application{},
		&models.Topic{},
		&models.Message{},
		&models.Report{},
	)
}
