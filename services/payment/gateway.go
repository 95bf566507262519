package payment

import "context"

// Gateway is the engine's view of the upstream payment collaborator. The
// engine only ever creates an order for a booking total and asks whether an
// order has been placed; capture, refunds and webhooks live outside the core.
type Gateway interface {
	// CreateOrder opens a payment order for the amount and returns its
	// upstream reference.
	CreateOrder(ctx context.Context, amount float64, email, bookingID string) (string, error)
	// OrderPlaced reports whether the referenced order has been paid or is
	// mid-processing. Used by the stale-pending sweep to decide whether an
	// old hold may be reclaimed.
	OrderPlaced(ctx context.Context, ref string) (bool, error)
}
