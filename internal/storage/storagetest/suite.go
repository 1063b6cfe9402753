// Package storagetest holds behaviour tests shared by every Storage backend.
package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshat3144/safespace-api/internal/models"
	"github.com/Akshat3144/safespace-api/internal/storage"
)

// NewInsertProperty returns a valid property payload for tests.
func NewInsertProperty(title, city, state, kind string, price int, hdi *float64) models.InsertProperty {
	return models.InsertProperty{
		Title:        title,
		Address:      "1 Main",
		City:         city,
		State:        state,
		ZipCode:      "97201",
		Price:        models.Ptr(price),
		Beds:         models.Ptr(2),
		Baths:        models.Ptr(1.0),
		Sqft:         models.Ptr(900),
		PropertyType: kind,
		SafetyScore:  models.Ptr(8.0),
		Latitude:     models.Ptr(45.5),
		Longitude:    models.Ptr(-122.6),
		HdiScore:     hdi,
		CreatedAt:    "2024-01-01T00:00:00Z",
	}
}

// NewInsertNeighborhood returns a valid neighborhood payload for tests.
func NewInsertNeighborhood(name, city, state string, lat, lng float64) models.InsertNeighborhood {
	return models.InsertNeighborhood{
		Name:             name,
		City:             city,
		State:            state,
		HdiScore:         models.Ptr(0.8),
		PoliceResponse:   models.Ptr(3),
		FireResponse:     models.Ptr(4),
		MedicalResponse:  models.Ptr(5),
		HospitalDistance: models.Ptr(1.5),
		ShelterDistance:  models.Ptr(2.5),
		SafetyLevel:      models.SafetyHigh,
		Latitude:         models.Ptr(lat),
		Longitude:        models.Ptr(lng),
	}
}

func compareEntry(userID, propertyID int64) models.InsertCompareListEntry {
	return models.InsertCompareListEntry{
		UserID:     models.Ptr(userID),
		PropertyID: models.Ptr(propertyID),
		AddedAt:    "2024-01-02T00:00:00Z",
	}
}

// Run exercises a Storage implementation. newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) storage.Storage) {
	t.Run("ids are per type and increasing", func(t *testing.T) {
		store := newStore(t)

		n, err := store.CreateNeighborhood(NewInsertNeighborhood("Alameda", "Portland", "OR", 45.546, -122.635))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n.ID)

		var last int64
		for i := 0; i < 5; i++ {
			p, err := store.CreateProperty(NewInsertProperty("Home", "Portland", "OR", "House", 500000, nil))
			require.NoError(t, err)
			assert.Greater(t, p.ID, last)
			last = p.ID
		}
		assert.Equal(t, int64(5), last)

		u, err := store.CreateUser(models.InsertUser{Username: "sam", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("create then get round trips", func(t *testing.T) {
		store := newStore(t)

		in := NewInsertProperty("X", "Portland", "OR", "House", 500000, models.Ptr(0.8))
		in.ImageURL = models.Ptr("https://example.com/x.jpg")
		created, err := store.CreateProperty(in)
		require.NoError(t, err)

		got, err := store.GetProperty(created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, in.ToProperty(created.ID), *got)
	})

	t.Run("unknown ids are absent", func(t *testing.T) {
		store := newStore(t)

		for _, id := range []int64{-1, 0, 1, 42} {
			p, err := store.GetProperty(id)
			require.NoError(t, err)
			assert.Nil(t, p)

			n, err := store.GetNeighborhood(id)
			require.NoError(t, err)
			assert.Nil(t, n)

			u, err := store.GetUser(id)
			require.NoError(t, err)
			assert.Nil(t, u)
		}
	})

	t.Run("properties are filtered", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateProperty(NewInsertProperty("A", "Portland", "OR", "House", 625000, models.Ptr(0.82)))
		require.NoError(t, err)
		_, err = store.CreateProperty(NewInsertProperty("B", "Portland", "OR", "Apartment", 720000, nil))
		require.NoError(t, err)
		_, err = store.CreateProperty(NewInsertProperty("C", "Seattle", "WA", "House", 950000, models.Ptr(0.9)))
		require.NoError(t, err)

		all, err := store.GetProperties(models.PropertyFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "A", all[0].Title)
		assert.Equal(t, "C", all[2].Title)

		portland, err := store.GetProperties(models.PropertyFilter{City: models.Ptr("Portland")})
		require.NoError(t, err)
		assert.Len(t, portland, 2)

		withHdi, err := store.GetProperties(models.PropertyFilter{MinHdi: models.Ptr(0.0)})
		require.NoError(t, err)
		assert.Len(t, withHdi, 2)

		band, err := store.GetProperties(models.PropertyFilter{MinPrice: models.Ptr(700000.0), MaxPrice: models.Ptr(950000.0)})
		require.NoError(t, err)
		assert.Len(t, band, 2)
	})

	t.Run("neighborhoods are filtered and found by name", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateNeighborhood(NewInsertNeighborhood("Alameda", "Portland", "OR", 45.546, -122.635))
		require.NoError(t, err)
		_, err = store.CreateNeighborhood(NewInsertNeighborhood("Munjoy Hill", "Portland", "ME", 43.666, -70.247))
		require.NoError(t, err)

		both, err := store.GetNeighborhoods(models.NeighborhoodFilter{City: models.Ptr("Portland"), State: models.Ptr("OR")})
		require.NoError(t, err)
		assert.Len(t, both, 1)

		city, err := store.GetNeighborhoods(models.NeighborhoodFilter{City: models.Ptr("Portland")})
		require.NoError(t, err)
		assert.Len(t, city, 2)

		none, err := store.GetNeighborhoods(models.NeighborhoodFilter{State: models.Ptr("WA")})
		require.NoError(t, err)
		assert.Empty(t, none)

		found, err := store.GetNeighborhoodByName("Munjoy Hill", "Portland", "ME")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, int64(2), found.ID)

		missing, err := store.GetNeighborhoodByName("Munjoy Hill", "Portland", "OR")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("users are found by username", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateUser(models.InsertUser{Username: "sam", Password: "secret"})
		require.NoError(t, err)

		// usernames are not unique in the store
		dup, err := store.CreateUser(models.InsertUser{Username: "sam", Password: "other"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), dup.ID)

		found, err := store.GetUserByUsername("sam")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, int64(1), found.ID)

		missing, err := store.GetUserByUsername("alex")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("compare list add, list and remove", func(t *testing.T) {
		store := newStore(t)

		first, err := store.AddToCompareList(compareEntry(1, 10))
		require.NoError(t, err)
		_, err = store.AddToCompareList(compareEntry(2, 10))
		require.NoError(t, err)
		dup, err := store.AddToCompareList(compareEntry(1, 10))
		require.NoError(t, err)

		entries, err := store.GetCompareList(1)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		require.NoError(t, store.RemoveFromCompareList(first.ID))
		require.NoError(t, store.RemoveFromCompareList(first.ID))
		require.NoError(t, store.RemoveFromCompareList(999))

		entries, err = store.GetCompareList(1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, dup.ID, entries[0].ID)

		empty, err := store.GetCompareList(3)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("deleted ids are not reused", func(t *testing.T) {
		store := newStore(t)

		_, err := store.AddToCompareList(compareEntry(1, 1))
		require.NoError(t, err)
		second, err := store.AddToCompareList(compareEntry(1, 2))
		require.NoError(t, err)
		require.NoError(t, store.RemoveFromCompareList(second.ID))

		third, err := store.AddToCompareList(compareEntry(1, 3))
		require.NoError(t, err)
		assert.Equal(t, second.ID+1, third.ID)
	})
}
