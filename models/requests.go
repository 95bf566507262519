package models

// CreateBookingRequest is the validated request body for creating a booking.
type CreateBookingRequest struct {
	PackageID string         `json:"packageId" binding:"required"`
	Date      string         `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time      string         `json:"time" binding:"required"` // "HH:MM"
	Extras    []BookingExtra `json:"extras"`
	PromoCode string         `json:"promoCode"`
	Name      string         `json:"name" binding:"required"`
	Email     string         `json:"email" binding:"required,email"`
	Phone     string         `json:"phone" binding:"required"`
}

// RescheduleRequest carries the new slot for a token-authorized reschedule.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ValidatePromoRequest asks for a price preview with a promo code applied.
// Validation alone never consumes promo usage.
type ValidatePromoRequest struct {
	Code      string         `json:"code" binding:"required"`
	PackageID string         `json:"packageId" binding:"required"`
	Date      string         `json:"date" binding:"required"`
	Time      string         `json:"time" binding:"required"`
	Extras    []BookingExtra `json:"extras"`
}

// PaymentCallbackRequest records an upstream payment status change.
type PaymentCallbackRequest struct {
	PaymentRef string `json:"paymentRef" binding:"required"`
	Status     string `json:"status" binding:"required"` // "deposit" or "paid"
}
