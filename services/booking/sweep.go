package booking

import (
	"context"

	"roomly/utils"

	"go.uber.org/zap"
)

// sweepStalePending reclaims pending holds older than StaleAfter whose
// payment order was never placed, so they stop blocking real customers.
// Runs opportunistically at the top of availability reads and lifecycle
// writes, never on a scheduler. Best-effort: any failure is logged and the
// caller proceeds; a hold that cannot be verified stays put until the next
// sweep.
func (e *DefaultBookingEngine) sweepStalePending(ctx context.Context) {
	logger := utils.GetLogger()

	cutoff := e.Now().Add(-e.StaleAfter)
	stale, err := e.Bookings.ListStalePending(ctx, cutoff)
	if err != nil {
		logger.Warn("stale sweep: listing failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	var reclaim []string
	for _, b := range stale {
		if b.PaymentRef != "" {
			placed, err := e.Payments.OrderPlaced(ctx, b.PaymentRef)
			if err != nil {
				logger.Warn("stale sweep: payment lookup failed, keeping hold",
					zap.String("bookingId", b.ID), zap.Error(err))
				continue
			}
			if placed {
				continue
			}
		}
		reclaim = append(reclaim, b.ID)
	}
	if len(reclaim) == 0 {
		return
	}

	if err := e.Bookings.DeleteByIDs(ctx, reclaim); err != nil {
		logger.Warn("stale sweep: delete failed", zap.Error(err))
		return
	}
	logger.Info("stale pending bookings reclaimed", zap.Int("count", len(reclaim)))
}
