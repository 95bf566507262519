package handlers

import (
	"net/http"

	"roomly/services/booking"
	"roomly/utils"

	"github.com/gin-gonic/gin"
)

// respondEngineError maps the engine's error taxonomy onto HTTP statuses.
func respondEngineError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch booking.CodeOf(err) {
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeConflict:
		status = http.StatusConflict
	case booking.CodeValidation:
		status = http.StatusBadRequest
	case booking.CodeUpstream:
		status = http.StatusBadGateway
	}
	utils.JSONError(c, status, booking.ReasonOf(err), err.Error())
}
