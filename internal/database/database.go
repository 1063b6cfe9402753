package database

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Akshat3144/safespace-api/internal/models"
	"github.com/Akshat3144/safespace-api/internal/storage"
)

var _ storage.Storage = (*Database)(nil)

// Database is a Storage backed by a SQLite file through gorm.
type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	return &Database{db: db}, nil
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) GetUser(id int64) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, notFoundAsNil("user", err)
	}
	return &user, nil
}

func (d *Database) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("username = ?", username).Order("id").First(&user).Error; err != nil {
		return nil, notFoundAsNil("user", err)
	}
	return &user, nil
}

func (d *Database) CreateUser(in models.InsertUser) (models.User, error) {
	user := in.ToUser(0)
	if err := d.db.Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (d *Database) GetProperties(filter models.PropertyFilter) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if hasNaN(filter.MinPrice, filter.MaxPrice, filter.MinHdi) {
		return properties, nil
	}

	if err := d.db.Scopes(propertyFilter(filter)).Order("id").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	return properties, nil
}

func (d *Database) GetProperty(id int64) (*models.Property, error) {
	var property models.Property
	if err := d.db.First(&property, id).Error; err != nil {
		return nil, notFoundAsNil("property", err)
	}
	return &property, nil
}

func (d *Database) CreateProperty(in models.InsertProperty) (models.Property, error) {
	property := in.ToProperty(0)
	if err := d.db.Create(&property).Error; err != nil {
		return models.Property{}, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

func (d *Database) GetNeighborhoods(filter models.NeighborhoodFilter) ([]models.Neighborhood, error) {
	query := d.db.Order("id")
	if filter.City != nil {
		query = query.Where("city = ?", *filter.City)
	}
	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}

	neighborhoods := make([]models.Neighborhood, 0)
	if err := query.Find(&neighborhoods).Error; err != nil {
		return nil, fmt.Errorf("failed to query neighborhoods: %w", err)
	}
	return neighborhoods, nil
}

func (d *Database) GetNeighborhood(id int64) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	if err := d.db.First(&neighborhood, id).Error; err != nil {
		return nil, notFoundAsNil("neighborhood", err)
	}
	return &neighborhood, nil
}

func (d *Database) GetNeighborhoodByName(name, city, state string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := d.db.Where("name = ? AND city = ? AND state = ?", name, city, state).
		Order("id").
		First(&neighborhood).Error
	if err != nil {
		return nil, notFoundAsNil("neighborhood", err)
	}
	return &neighborhood, nil
}

func (d *Database) CreateNeighborhood(in models.InsertNeighborhood) (models.Neighborhood, error) {
	neighborhood := in.ToNeighborhood(0)
	if err := d.db.Create(&neighborhood).Error; err != nil {
		return models.Neighborhood{}, fmt.Errorf("failed to create neighborhood: %w", err)
	}
	return neighborhood, nil
}

func (d *Database) GetCompareList(userID int64) ([]models.CompareListEntry, error) {
	entries := make([]models.CompareListEntry, 0)
	if err := d.db.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query compare list: %w", err)
	}
	return entries, nil
}

func (d *Database) AddToCompareList(in models.InsertCompareListEntry) (models.CompareListEntry, error) {
	entry := in.ToEntry(0)
	if err := d.db.Create(&entry).Error; err != nil {
		return models.CompareListEntry{}, fmt.Errorf("failed to add compare list entry: %w", err)
	}
	return entry, nil
}

func (d *Database) RemoveFromCompareList(id int64) error {
	if err := d.db.Delete(&models.CompareListEntry{}, id).Error; err != nil {
		return fmt.Errorf("failed to remove compare list entry %d: %w", id, err)
	}
	return nil
}

func propertyFilter(filter models.PropertyFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.City != nil {
			db = db.Where("city = ?", *filter.City)
		}
		if filter.State != nil {
			db = db.Where("state = ?", *filter.State)
		}
		if filter.PropertyType != nil {
			db = db.Where("property_type = ?", *filter.PropertyType)
		}
		if filter.MinPrice != nil {
			db = db.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.MinHdi != nil {
			db = db.Where("hdi_score IS NOT NULL AND hdi_score >= ?", *filter.MinHdi)
		}
		return db
	}
}

// hasNaN reports whether a numeric bound came from unparseable input.
// Such a bound matches nothing.
func hasNaN(values ...*float64) bool {
	for _, v := range values {
		if v != nil && math.IsNaN(*v) {
			return true
		}
	}
	return false
}

func notFoundAsNil(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}
