package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package owns. Used by the
// API on startup (behind AUTO_MIGRATE), by the seeder and by tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&guesthouseModel{},
		&roomModel{},
		&reservationModel{},
		&reviewModel{},
	)
}
