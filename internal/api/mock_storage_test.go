package api

import (
	"github.com/stretchr/testify/mock"

	"github.com/Akshat3144/safespace-api/internal/models"
)

// MockStorage is a mock implementation of storage.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetUser(id int64) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockStorage) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockStorage) CreateUser(in models.InsertUser) (models.User, error) {
	args := m.Called(in)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStorage) GetProperties(filter models.PropertyFilter) ([]models.Property, error) {
	args := m.Called(filter)
	properties, _ := args.Get(0).([]models.Property)
	return properties, args.Error(1)
}

func (m *MockStorage) GetProperty(id int64) (*models.Property, error) {
	args := m.Called(id)
	property, _ := args.Get(0).(*models.Property)
	return property, args.Error(1)
}

func (m *MockStorage) CreateProperty(in models.InsertProperty) (models.Property, error) {
	args := m.Called(in)
	return args.Get(0).(models.Property), args.Error(1)
}

func (m *MockStorage) GetNeighborhoods(filter models.NeighborhoodFilter) ([]models.Neighborhood, error) {
	args := m.Called(filter)
	neighborhoods, _ := args.Get(0).([]models.Neighborhood)
	return neighborhoods, args.Error(1)
}

func (m *MockStorage) GetNeighborhood(id int64) (*models.Neighborhood, error) {
	args := m.Called(id)
	neighborhood, _ := args.Get(0).(*models.Neighborhood)
	return neighborhood, args.Error(1)
}

func (m *MockStorage) GetNeighborhoodByName(name, city, state string) (*models.Neighborhood, error) {
	args := m.Called(name, city, state)
	neighborhood, _ := args.Get(0).(*models.Neighborhood)
	return neighborhood, args.Error(1)
}

func (m *MockStorage) CreateNeighborhood(in models.InsertNeighborhood) (models.Neighborhood, error) {
	args := m.Called(in)
	return args.Get(0).(models.Neighborhood), args.Error(1)
}

func (m *MockStorage) GetCompareList(userID int64) ([]models.CompareListEntry, error) {
	args := m.Called(userID)
	entries, _ := args.Get(0).([]models.CompareListEntry)
	return entries, args.Error(1)
}

func (m *MockStorage) AddToCompareList(in models.InsertCompareListEntry) (models.CompareListEntry, error) {
	args := m.Called(in)
	return args.Get(0).(models.CompareListEntry), args.Error(1)
}

func (m *MockStorage) RemoveFromCompareList(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
