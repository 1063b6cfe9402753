// Package storage defines the entity store used by the API and its
// in-memory implementation.
package storage

import "github.com/Akshat3144/safespace-api/internal/models"

// Storage keeps users, properties, neighborhoods and compare list entries.
// Lookups return a nil record, not an error, when the id is unknown.
// Lists are ordered by ascending id.
type Storage interface {
	GetUser(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user models.InsertUser) (models.User, error)

	GetProperties(filter models.PropertyFilter) ([]models.Property, error)
	GetProperty(id int64) (*models.Property, error)
	CreateProperty(property models.InsertProperty) (models.Property, error)

	GetNeighborhoods(filter models.NeighborhoodFilter) ([]models.Neighborhood, error)
	GetNeighborhood(id int64) (*models.Neighborhood, error)
	GetNeighborhoodByName(name, city, state string) (*models.Neighborhood, error)
	CreateNeighborhood(neighborhood models.InsertNeighborhood) (models.Neighborhood, error)

	GetCompareList(userID int64) ([]models.CompareListEntry, error)
	AddToCompareList(entry models.InsertCompareListEntry) (models.CompareListEntry, error)
	// RemoveFromCompareList is a no-op for unknown ids.
	RemoveFromCompareList(id int64) error
}
