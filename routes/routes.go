package routes

import (
	"roomly/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the booking service.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, catalogHandler *handlers.CatalogHandler) {
	r.GET("/healthz", handlers.Healthz)

	api := r.Group("/api")
	{
		api.GET("/packages", catalogHandler.ListPackages)
		api.GET("/extras", catalogHandler.ListExtras)

		api.GET("/availability/dates", bookingHandler.AvailableDates)
		api.GET("/availability/times", bookingHandler.AvailableTimes)

		api.POST("/promo/validate", bookingHandler.ValidatePromo)

		api.POST("/bookings", bookingHandler.CreateBooking)
		api.GET("/bookings/:token", bookingHandler.GetBooking)
		api.PUT("/bookings/:token/schedule", bookingHandler.RescheduleBooking)
		api.POST("/bookings/:token/cancel", bookingHandler.CancelBooking)

		api.POST("/payments/callback", bookingHandler.PaymentCallback)
	}
}
