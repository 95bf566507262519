package notification

import (
	"context"

	"roomly/models"
)

// Mailer sends booking lifecycle emails. All sends are best-effort and
// fire-and-forget: a committed booking is never rolled back because an
// email failed.
type Mailer interface {
	SendBookingConfirmed(ctx context.Context, b *models.Booking, manageURL string) error
	SendBookingRescheduled(ctx context.Context, b *models.Booking) error
	SendBookingCancelled(ctx context.Context, b *models.Booking) error
}
