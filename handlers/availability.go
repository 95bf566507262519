package handlers

import (
	"net/http"
	"time"

	"roomly/config"
	"roomly/services/booking"

	"github.com/gin-gonic/gin"
)

// AvailableDates handles GET /api/availability/dates?packageId&from&to.
func (h *BookingHandler) AvailableDates(c *gin.Context) {
	packageID := c.Query("packageId")
	from := c.Query("from")
	to := c.Query("to")
	if packageID == "" || from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "packageId, from and to are required"})
		return
	}

	dates, err := h.Engine.AvailableDates(c.Request.Context(), packageID, from, to)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// AvailableTimes handles GET /api/availability/times?packageId&date with
// optional excludeBookingId and referenceTime (RFC 3339) for the reschedule
// flow.
func (h *BookingHandler) AvailableTimes(c *gin.Context) {
	packageID := c.Query("packageId")
	date := c.Query("date")
	if packageID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "packageId and date are required"})
		return
	}

	opts := booking.AvailabilityOptions{
		ExcludeBookingID: c.Query("excludeBookingId"),
	}
	if raw := c.Query("referenceTime"); raw != "" {
		ref, err := time.ParseInLocation(time.RFC3339, raw, config.Location)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referenceTime", "details": err.Error()})
			return
		}
		opts.ReferenceTime = &ref
	}

	times, err := h.Engine.AvailableTimes(c.Request.Context(), packageID, date, opts)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"times": times})
}
