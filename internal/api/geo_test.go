package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNearestNeighborhood(t *testing.T) {
	router := seededRouter(t)

	tests := []struct {
		name         string
		query        string
		expectedCode int
		expectedName string
	}{
		{name: "Sellwood center", query: "?lat=45.472&lng=-122.652", expectedCode: http.StatusOK, expectedName: "Sellwood"},
		{name: "Pearl District listing", query: "?lat=45.526&lng=-122.684", expectedCode: http.StatusOK, expectedName: "Pearl District"},
		{name: "Restricted to state", query: "?lat=45.526&lng=-122.684&state=OR", expectedCode: http.StatusOK, expectedName: "Pearl District"},
		{name: "No candidates", query: "?lat=45.526&lng=-122.684&state=WA", expectedCode: http.StatusNotFound},
		{name: "Missing coordinates", query: "", expectedCode: http.StatusBadRequest},
		{name: "Not a number", query: "?lat=north&lng=-122.6", expectedCode: http.StatusBadRequest},
		{name: "Out of range", query: "?lat=95&lng=-122.6", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(router, http.MethodGet, "/api/nearest-neighborhood"+tt.query, "")
			require.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
			if tt.expectedCode != http.StatusOK {
				return
			}

			response := decode[NearestNeighborhoodResponse](t, rec)
			assert.Equal(t, tt.expectedName, response.Neighborhood.Name)
			assert.InDelta(t, 0, response.DistanceMeters, 1)
		})
	}
}

func TestGetPropertiesGeoJSON(t *testing.T) {
	router := seededRouter(t)

	rec := performRequest(router, http.MethodGet, "/api/geojson/properties?propertyType=Apartment", "")
	require.Equal(t, http.StatusOK, rec.Code)

	collection := decode[struct {
		Type     string `json:"type"`
		Features []struct {
			ID       float64        `json:"id"`
			Geometry map[string]any `json:"geometry"`
			Props    map[string]any `json:"properties"`
		} `json:"features"`
	}](t, rec)

	assert.Equal(t, "FeatureCollection", collection.Type)
	require.Len(t, collection.Features, 1)
	assert.Equal(t, float64(3), collection.Features[0].ID)
	assert.Equal(t, "Point", collection.Features[0].Geometry["type"])
	assert.Equal(t, []any{-122.684, 45.526}, collection.Features[0].Geometry["coordinates"])
	assert.Equal(t, "Luxury Condo in Pearl District", collection.Features[0].Props["title"])
}

func TestGetNeighborhoodsGeoJSON(t *testing.T) {
	router := seededRouter(t)

	rec := performRequest(router, http.MethodGet, "/api/geojson/neighborhoods?city=Portland", "")
	require.Equal(t, http.StatusOK, rec.Code)

	collection := decode[struct {
		Features []map[string]any `json:"features"`
	}](t, rec)
	assert.Len(t, collection.Features, 5)
}
