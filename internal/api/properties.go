package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akshat3144/safespace-api/internal/models"
)

// PropertyQuery is the raw query string of a property search.
type PropertyQuery struct {
	City         string `form:"city"`
	State        string `form:"state"`
	PropertyType string `form:"propertyType"`
	MinPrice     string `form:"minPrice"`
	MaxPrice     string `form:"maxPrice"`
	MinHdi       string `form:"minHdi"`
}

func (q PropertyQuery) Filter() models.PropertyFilter {
	return models.PropertyFilter{
		City:         models.OptionalString(q.City),
		State:        models.OptionalString(q.State),
		PropertyType: models.OptionalString(q.PropertyType),
		MinPrice:     models.OptionalNumber(q.MinPrice),
		MaxPrice:     models.OptionalNumber(q.MaxPrice),
		MinHdi:       models.OptionalNumber(q.MinHdi),
	}
}

func (h *Handler) propertyFilter(c *gin.Context) models.PropertyFilter {
	var query PropertyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Warn("Failed to parse property query")
	}
	return query.Filter()
}

func (h *Handler) GetProperties(c *gin.Context) {
	properties, err := h.store.GetProperties(h.propertyFilter(c))
	if err != nil {
		h.serverError(c, err, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	property, err := h.store.GetProperty(id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch property")
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var request models.InsertProperty
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationIssues(err)})
		return
	}

	property, err := h.store.CreateProperty(request)
	if err != nil {
		h.serverError(c, err, "Failed to create property")
		return
	}

	h.logger.WithField("property_id", property.ID).Info("Created property")
	c.JSON(http.StatusCreated, property)
}
