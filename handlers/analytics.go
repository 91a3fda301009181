package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/services"
)

// GetSalesData reports sales for a location. startDate and endDate accept
// RFC 3339 timestamps or plain dates; a plain endDate covers that whole day.
// The window defaults to the last seven days.
func (h *Handler) GetSalesData(c *gin.Context) {
	locationID, ok := requireQuery(c, "locationId")
	if !ok {
		return
	}

	end := h.now()
	if raw := c.Query("endDate"); raw != "" {
		t, dateOnly, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
			return
		}
		end = t
		if dateOnly {
			end = t.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
	}
	start := end.Add(-services.DefaultSalesWindow)
	if raw := c.Query("startDate"); raw != "" {
		t, _, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
			return
		}
		start = t
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate is before startDate"})
		return
	}

	data, err := h.sales.GetSalesData(c.Request.Context(), locationID, start, end)
	if err != nil {
		h.fail(c, err, "Sales data", "fetch sales data")
		return
	}
	c.JSON(http.StatusOK, data)
}

// parseTime reads an RFC 3339 timestamp or a YYYY-MM-DD date in UTC.
func parseTime(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(time.DateOnly, raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("parse time %q: %w", raw, err)
}
