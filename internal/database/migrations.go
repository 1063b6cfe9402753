package database

import "github.com/Akshat3144/safespace-api/internal/models"

// RunMigrations creates or updates the tables for every entity type.
func (d *Database) RunMigrations() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Neighborhood{},
		&models.CompareListEntry{},
	)
}
