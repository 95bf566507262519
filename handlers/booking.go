package handlers

import (
	"net/http"

	"roomly/models"
	"roomly/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Engine booking.BookingEngine
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine booking.BookingEngine) *BookingHandler {
	return &BookingHandler{Engine: engine}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Engine.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b.PublicView()})
}

// GetBooking handles GET /api/bookings/:token.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Engine.GetBookingByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b.PublicView()})
}

// RescheduleBooking handles PUT /api/bookings/:token/schedule.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Engine.RescheduleBooking(c.Request.Context(), c.Param("token"), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b.PublicView()})
}

// CancelBooking handles POST /api/bookings/:token/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Engine.CancelBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b.PublicView()})
}

// PaymentCallback handles POST /api/payments/callback.
func (h *BookingHandler) PaymentCallback(c *gin.Context) {
	var req models.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.RecordPaymentStatus(c.Request.Context(), req.PaymentRef, req.Status); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
