package booking

import (
	"context"
	"time"

	bookingRepo "roomly/database/repository/booking"
	catalogRepo "roomly/database/repository/catalog"
	"roomly/models"
	"roomly/services/notification"
	"roomly/services/payment"
)

// AvailabilityOptions tunes a time listing. ExcludeBookingID keeps a booking
// from blocking itself while it is being rescheduled or revalidated.
// ReferenceTime overrides "now" for the lead-time filter (reschedule flow).
type AvailabilityOptions struct {
	ExcludeBookingID string
	ReferenceTime    *time.Time
}

// BookingEngine is the scheduling and allocation core: availability queries,
// promo validation, pricing, and the booking lifecycle as race-safe
// operations against the shared store.
type BookingEngine interface {
	AvailableDates(ctx context.Context, packageID, from, to string) ([]string, error)
	AvailableTimes(ctx context.Context, packageID, date string, opts AvailabilityOptions) ([]string, error)
	ValidatePromo(ctx context.Context, code, date, clock string, subtotal float64) (models.PromoResult, error)
	QuoteSubtotal(ctx context.Context, packageID string, extras []models.BookingExtra) (float64, error)
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, token string, req models.RescheduleRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, token string) (*models.Booking, error)
	GetBookingByToken(ctx context.Context, token string) (*models.Booking, error)
	RecordPaymentStatus(ctx context.Context, ref, status string) error
}

// DefaultBookingEngine implements BookingEngine.
type DefaultBookingEngine struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Payments payment.Gateway
	Mailer   notification.Mailer
	Policy   CalendarPolicy

	// StaleAfter is how long a pending booking may hold its slot without a
	// placed payment order before the sweep reclaims it.
	StaleAfter time.Duration

	// PublicBaseURL feeds the manage link in confirmation emails.
	PublicBaseURL string

	// Now is swappable for tests.
	Now func() time.Time
}

// NewDefaultBookingEngine wires the engine with its collaborators.
func NewDefaultBookingEngine(
	catalog catalogRepo.CatalogRepository,
	bookings bookingRepo.BookingRepository,
	payments payment.Gateway,
	mailer notification.Mailer,
	policy CalendarPolicy,
	staleAfter time.Duration,
	publicBaseURL string,
) *DefaultBookingEngine {
	return &DefaultBookingEngine{
		Catalog:       catalog,
		Bookings:      bookings,
		Payments:      payments,
		Mailer:        mailer,
		Policy:        policy,
		StaleAfter:    staleAfter,
		PublicBaseURL: publicBaseURL,
		Now:           time.Now,
	}
}
