package controllers

import (
	"github.com/srinitha06/Water-monitoring-system/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations for the users and dispensers
// tables.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Dispenser{})
}
