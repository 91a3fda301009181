package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/models"
)

// GetSettings returns the settings row of a location, or the first row when
// no locationId is given.
func (h *Handler) GetSettings(c *gin.Context) {
	rows, err := h.repo.ListSettings(c.Request.Context(), c.Query("locationId"))
	if err != nil {
		h.fail(c, err, "Settings", "fetch settings")
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, rows[0])
}

func (h *Handler) CreateSettings(c *gin.Context) {
	var in models.NewRestaurantSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Settings")
		return
	}
	settings, err := h.repo.CreateSettings(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Settings", "create settings")
		return
	}
	c.JSON(http.StatusCreated, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var patch models.RestaurantSettingsPatch
	if !h.bindPatch(c, &patch, "Settings") {
		return
	}
	settings, err := h.repo.UpdateSettings(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Settings", "update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
