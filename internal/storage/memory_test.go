package storage_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshat3144/safespace-api/internal/models"
	"github.com/Akshat3144/safespace-api/internal/storage"
	"github.com/Akshat3144/safespace-api/internal/storage/storagetest"
)

func TestMemStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return storage.NewMemStorage()
	})
}

func TestMemStorage_ConcurrentCreates(t *testing.T) {
	store := storage.NewMemStorage()

	const workers = 50
	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := store.CreateProperty(storagetest.NewInsertProperty("Home", "Portland", "OR", "House", 400000, nil))
			assert.NoError(t, err)
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	all, err := store.GetProperties(models.PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, workers)
	for i, p := range all {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestMemStorage_ReturnsCopies(t *testing.T) {
	store := storage.NewMemStorage()
	created, err := store.CreateProperty(storagetest.NewInsertProperty("Original", "Portland", "OR", "House", 400000, nil))
	require.NoError(t, err)

	got, err := store.GetProperty(created.ID)
	require.NoError(t, err)
	got.Title = "Changed"

	again, err := store.GetProperty(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}
