// internal/model/migrate.go
package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every entity. Order matters:
// referenced tables first so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Lab{},
		&Personnel{},
		&Project{},
		&Activity{},
		&Cost{},
		&LabSupportRelation{},
	)
}
