package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.repo.ListLocations(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Location", "fetch locations")
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *Handler) GetLocation(c *gin.Context) {
	location, err := h.repo.GetLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Location", "fetch location")
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *Handler) CreateLocation(c *gin.Context) {
	var in models.NewLocation
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Location")
		return
	}
	location, err := h.repo.CreateLocation(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Location", "create location")
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *Handler) UpdateLocation(c *gin.Context) {
	var patch models.LocationPatch
	if !h.bindPatch(c, &patch, "Location") {
		return
	}
	location, err := h.repo.UpdateLocation(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Location", "update location")
		return
	}
	c.JSON(http.StatusOK, location)
}
