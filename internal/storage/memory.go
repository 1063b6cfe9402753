package storage

import (
	"sort"
	"sync"

	"github.com/Akshat3144/safespace-api/internal/models"
)

var _ Storage = (*MemStorage)(nil)

// MemStorage implements Storage with maps guarded by a single RWMutex.
// Each entity type has its own id counter starting at 1; ids are never
// reused, even after deletion.
type MemStorage struct {
	mu sync.RWMutex

	users         map[int64]models.User
	properties    map[int64]models.Property
	neighborhoods map[int64]models.Neighborhood
	compareLists  map[int64]models.CompareListEntry

	nextUserID         int64
	nextPropertyID     int64
	nextNeighborhoodID int64
	nextCompareID      int64
}

// NewMemStorage creates an empty store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:              make(map[int64]models.User),
		properties:         make(map[int64]models.Property),
		neighborhoods:      make(map[int64]models.Neighborhood),
		compareLists:       make(map[int64]models.CompareListEntry),
		nextUserID:         1,
		nextPropertyID:     1,
		nextNeighborhoodID: 1,
		nextCompareID:      1,
	}
}

func (m *MemStorage) GetUser(id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range sortedValues(m.users) {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

// CreateUser does not check username uniqueness.
func (m *MemStorage) CreateUser(in models.InsertUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := in.ToUser(m.nextUserID)
	m.nextUserID++
	m.users[user.ID] = user
	return user, nil
}

func (m *MemStorage) GetProperties(filter models.PropertyFilter) ([]models.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return filter.Apply(sortedValues(m.properties)), nil
}

func (m *MemStorage) GetProperty(id int64) (*models.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	property, ok := m.properties[id]
	if !ok {
		return nil, nil
	}
	return &property, nil
}

func (m *MemStorage) CreateProperty(in models.InsertProperty) (models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	property := in.ToProperty(m.nextPropertyID)
	m.nextPropertyID++
	m.properties[property.ID] = property
	return property, nil
}

func (m *MemStorage) GetNeighborhoods(filter models.NeighborhoodFilter) ([]models.Neighborhood, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return filter.Apply(sortedValues(m.neighborhoods)), nil
}

func (m *MemStorage) GetNeighborhood(id int64) (*models.Neighborhood, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	neighborhood, ok := m.neighborhoods[id]
	if !ok {
		return nil, nil
	}
	return &neighborhood, nil
}

func (m *MemStorage) GetNeighborhoodByName(name, city, state string) (*models.Neighborhood, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, n := range sortedValues(m.neighborhoods) {
		if n.Name == name && n.City == city && n.State == state {
			return &n, nil
		}
	}
	return nil, nil
}

func (m *MemStorage) CreateNeighborhood(in models.InsertNeighborhood) (models.Neighborhood, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	neighborhood := in.ToNeighborhood(m.nextNeighborhoodID)
	m.nextNeighborhoodID++
	m.neighborhoods[neighborhood.ID] = neighborhood
	return neighborhood, nil
}

func (m *MemStorage) GetCompareList(userID int64) ([]models.CompareListEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]models.CompareListEntry, 0)
	for _, entry := range sortedValues(m.compareLists) {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// AddToCompareList does not check that the user or property exist.
func (m *MemStorage) AddToCompareList(in models.InsertCompareListEntry) (models.CompareListEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := in.ToEntry(m.nextCompareID)
	m.nextCompareID++
	m.compareLists[entry.ID] = entry
	return entry, nil
}

func (m *MemStorage) RemoveFromCompareList(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.compareLists, id)
	return nil
}

// sortedValues returns copies of the map values in ascending key order,
// which is also insertion order since ids only grow.
func sortedValues[T any](m map[int64]T) []T {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}
