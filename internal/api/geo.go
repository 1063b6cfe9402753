package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"github.com/Akshat3144/safespace-api/internal/geometry"
	"github.com/Akshat3144/safespace-api/internal/models"
)

type NearestNeighborhoodResponse struct {
	Neighborhood   models.Neighborhood `json:"neighborhood"`
	DistanceMeters float64             `json:"distanceMeters"`
}

// GetNearestNeighborhood finds the neighborhood closest to ?lat=&lng=,
// optionally limited by ?city= and ?state=.
func (h *Handler) GetNearestNeighborhood(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !geometry.ValidCoordinates(lat, lng) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be valid coordinates"})
		return
	}

	neighborhoods, err := h.store.GetNeighborhoods(neighborhoodFilter(c))
	if err != nil {
		h.serverError(c, err, "Failed to fetch neighborhoods")
		return
	}

	nearest, distance := geometry.Nearest(orb.Point{lng, lat}, neighborhoods)
	if nearest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No neighborhoods found"})
		return
	}

	c.JSON(http.StatusOK, NearestNeighborhoodResponse{
		Neighborhood:   *nearest,
		DistanceMeters: distance,
	})
}

func (h *Handler) GetPropertiesGeoJSON(c *gin.Context) {
	properties, err := h.store.GetProperties(h.propertyFilter(c))
	if err != nil {
		h.serverError(c, err, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, geometry.PropertiesFeatureCollection(properties))
}

func (h *Handler) GetNeighborhoodsGeoJSON(c *gin.Context) {
	neighborhoods, err := h.store.GetNeighborhoods(neighborhoodFilter(c))
	if err != nil {
		h.serverError(c, err, "Failed to fetch neighborhoods")
		return
	}

	c.JSON(http.StatusOK, geometry.NeighborhoodsFeatureCollection(neighborhoods))
}
