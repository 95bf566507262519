package handlers

import (
	"net/http"

	"roomly/models"

	"github.com/gin-gonic/gin"
)

// ValidatePromo handles POST /api/promo/validate. Price preview only: promo
// usage is consumed exclusively by a successful booking commit.
func (h *BookingHandler) ValidatePromo(c *gin.Context) {
	var req models.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	subtotal, err := h.Engine.QuoteSubtotal(c.Request.Context(), req.PackageID, req.Extras)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	res, err := h.Engine.ValidatePromo(c.Request.Context(), req.Code, req.Date, req.Time, subtotal)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
