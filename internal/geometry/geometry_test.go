package geometry

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshat3144/safespace-api/internal/models"
)

func portlandNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{ID: 1, Name: "Alameda", Latitude: 45.546, Longitude: -122.635, HdiScore: 0.89, SafetyLevel: "high"},
		{ID: 2, Name: "Pearl District", Latitude: 45.526, Longitude: -122.684, HdiScore: 0.82, SafetyLevel: "high"},
		{ID: 5, Name: "Sellwood", Latitude: 45.472, Longitude: -122.652, HdiScore: 0.72, SafetyLevel: "medium"},
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name     string
		point    orb.Point
		expected string
	}{
		{name: "Exact center", point: orb.Point{-122.684, 45.526}, expected: "Pearl District"},
		{name: "Near Alameda", point: orb.Point{-122.639, 45.535}, expected: "Alameda"},
		{name: "South of Sellwood", point: orb.Point{-122.65, 45.40}, expected: "Sellwood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearest, distance := Nearest(tt.point, portlandNeighborhoods())
			require.NotNil(t, nearest)
			assert.Equal(t, tt.expected, nearest.Name)
			assert.GreaterOrEqual(t, distance, 0.0)
		})
	}
}

func TestNearest_ExactMatchHasZeroDistance(t *testing.T) {
	_, distance := Nearest(orb.Point{-122.635, 45.546}, portlandNeighborhoods())
	assert.InDelta(t, 0, distance, 0.001)
}

func TestNearest_Empty(t *testing.T) {
	nearest, distance := Nearest(orb.Point{0, 0}, nil)
	assert.Nil(t, nearest)
	assert.Equal(t, 0.0, distance)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(45.5, -122.6))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -181))
}

func TestPropertiesFeatureCollection(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Title: "A", City: "Portland", Price: 500000, Latitude: 45.5, Longitude: -122.6, HdiScore: models.Ptr(0.8)},
		{ID: 2, Title: "B", City: "Portland", Price: 600000, Latitude: 45.4, Longitude: -122.7},
	}

	fc := PropertiesFeatureCollection(properties)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, orb.Point{-122.6, 45.5}, fc.Features[0].Geometry)
	assert.Equal(t, 0.8, fc.Features[0].Properties["hdiScore"])
	_, hasHdi := fc.Features[1].Properties["hdiScore"]
	assert.False(t, hasHdi)

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"FeatureCollection"`)
}

func TestNeighborhoodsFeatureCollection(t *testing.T) {
	fc := NeighborhoodsFeatureCollection(portlandNeighborhoods())
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "Alameda", fc.Features[0].Properties["name"])
	assert.Equal(t, int64(5), fc.Features[2].ID)
}
