package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akshat3144/safespace-api/internal/models"
)

// GetCompareList returns the properties a user added to their compare
// list. Entries pointing at unknown properties are skipped.
func (h *Handler) GetCompareList(c *gin.Context) {
	userID, ok := h.parseID(c, "userId")
	if !ok {
		return
	}

	entries, err := h.store.GetCompareList(userID)
	if err != nil {
		h.serverError(c, err, "Failed to fetch compare list")
		return
	}

	properties := make([]models.Property, 0, len(entries))
	for _, entry := range entries {
		property, err := h.store.GetProperty(entry.PropertyID)
		if err != nil {
			h.serverError(c, err, "Failed to fetch compare list")
			return
		}
		if property != nil {
			properties = append(properties, *property)
		}
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) AddToCompareList(c *gin.Context) {
	var request models.InsertCompareListEntry
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationIssues(err)})
		return
	}

	entry, err := h.store.AddToCompareList(request)
	if err != nil {
		h.serverError(c, err, "Failed to add property to compare list")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) RemoveFromCompareList(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.RemoveFromCompareList(id); err != nil {
		h.serverError(c, err, "Failed to remove property from compare list")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully removed from compare list"})
}
