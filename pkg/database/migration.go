package database

import (
	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
)

// AutoMigrate runs database migrations for all non-partitioned models.
// The readings table is partitioned and owned by MigrateReadings.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.TokenBlacklist{},
		&model.CoverageArea{},
		&model.Transformer{},
		&model.Meter{},
		&model.Alert{},
	)
}
