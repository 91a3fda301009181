package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) ListAreas(c *gin.Context) {
	locationID, ok := requireQuery(c, "locationId")
	if !ok {
		return
	}
	areas, err := h.repo.ListAreas(c.Request.Context(), locationID)
	if err != nil {
		h.fail(c, err, "Area", "fetch areas")
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *Handler) CreateArea(c *gin.Context) {
	var in models.NewArea
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Area")
		return
	}
	area, err := h.repo.CreateArea(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Area", "create area")
		return
	}
	c.JSON(http.StatusCreated, area)
}

// ListTables returns the floor plan of a location with area and server
// resolved on each table.
func (h *Handler) ListTables(c *gin.Context) {
	locationID, ok := requireQuery(c, "locationId")
	if !ok {
		return
	}
	tables, err := h.floor.ListTables(c.Request.Context(), locationID)
	if err != nil {
		h.fail(c, err, "Table", "fetch tables")
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) GetTable(c *gin.Context) {
	table, err := h.repo.GetTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Table", "fetch table")
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) CreateTable(c *gin.Context) {
	var in models.NewTable
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Table")
		return
	}
	table, err := h.repo.CreateTable(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Table", "create table")
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) UpdateTable(c *gin.Context) {
	var patch models.TablePatch
	if !h.bindPatch(c, &patch, "Table") {
		return
	}
	table, err := h.repo.UpdateTable(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Table", "update table")
		return
	}
	c.JSON(http.StatusOK, table)
}

// ListReservations accepts an optional date=YYYY-MM-DD that narrows the list
// to one UTC day.
func (h *Handler) ListReservations(c *gin.Context) {
	locationID, ok := requireQuery(c, "locationId")
	if !ok {
		return
	}
	var day time.Time
	if raw := c.Query("date"); raw != "" {
		var err error
		if day, err = time.Parse(time.DateOnly, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
	}
	reservations, err := h.floor.ListReservations(c.Request.Context(), locationID, day)
	if err != nil {
		h.fail(c, err, "Reservation", "fetch reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) GetReservation(c *gin.Context) {
	reservation, err := h.repo.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Reservation", "fetch reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var in models.NewReservation
	if err := c.ShouldBindJSON(&in); err != nil {
		h.invalid(c, err, "Reservation")
		return
	}
	reservation, err := h.repo.CreateReservation(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Reservation", "create reservation")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	var patch models.ReservationPatch
	if !h.bindPatch(c, &patch, "Reservation") {
		return
	}
	reservation, err := h.repo.UpdateReservation(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "Reservation", "update reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}
