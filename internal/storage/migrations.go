package storage

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"patient-data-service/internal/domain/entities"
)

// runMigrations runs all database migrations using gormigrate.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// Migration 001: patients table
		{
			ID: "001_patients",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entities.Patient{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("patients")
			},
		},

		// Migration 002: screening batches and per-row results
		{
			ID: "002_screenings",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&entities.ScreeningBatch{}); err != nil {
					return err
				}
				return tx.AutoMigrate(&entities.ScreeningResult{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("screening_results", "screening_batches")
			},
		},
	})

	return m.Migrate()
}
