package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akshat3144/safespace-api/internal/models"
)

func neighborhoodFilter(c *gin.Context) models.NeighborhoodFilter {
	return models.NeighborhoodFilter{
		City:  models.OptionalString(c.Query("city")),
		State: models.OptionalString(c.Query("state")),
	}
}

func (h *Handler) GetNeighborhoods(c *gin.Context) {
	neighborhoods, err := h.store.GetNeighborhoods(neighborhoodFilter(c))
	if err != nil {
		h.serverError(c, err, "Failed to fetch neighborhoods")
		return
	}

	c.JSON(http.StatusOK, neighborhoods)
}

func (h *Handler) GetNeighborhood(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	neighborhood, err := h.store.GetNeighborhood(id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch neighborhood")
		return
	}
	if neighborhood == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Neighborhood not found"})
		return
	}

	c.JSON(http.StatusOK, neighborhood)
}

func (h *Handler) CreateNeighborhood(c *gin.Context) {
	var request models.InsertNeighborhood
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationIssues(err)})
		return
	}

	neighborhood, err := h.store.CreateNeighborhood(request)
	if err != nil {
		h.serverError(c, err, "Failed to create neighborhood")
		return
	}

	c.JSON(http.StatusCreated, neighborhood)
}
