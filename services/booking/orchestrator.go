package booking

import (
	"context"
	"fmt"

	bookingRepo "roomly/database/repository/booking"
	"roomly/models"
	"roomly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validateSlot parses and checks the requested date/time against the
// calendar policy: real calendar date, not a holiday, inside the work
// window, past the lead-time cutoff, with room for the full block before
// closing. Returns the start in minutes from midnight.
func (e *DefaultBookingEngine) validateSlot(ctx context.Context, pkg *models.Package, date, clock string) (int, error) {
	day, err := e.Policy.ParseDate(date)
	if err != nil {
		return 0, err
	}
	start, err := models.ClockToMinutes(clock)
	if err != nil {
		return 0, NewValidation("badTime", err.Error())
	}

	holidays, err := e.Catalog.ListHolidays(ctx, date, date)
	if err != nil {
		return 0, NewUpstream("store", err.Error())
	}
	if len(holidays) > 0 {
		return 0, NewValidation("holiday", "selected date is a holiday")
	}

	open, closing := e.Policy.WorkWindow(day)
	block := e.Policy.BlockFor(pkg)
	if start < open || start+block > closing {
		return 0, NewValidation("outsideHours", "selected time is outside business hours")
	}
	if start < e.Policy.EarliestStart(day, e.Now()) {
		return 0, NewValidation("tooSoon", "selected time is too soon")
	}
	return start, nil
}

// CreateBooking runs the full create flow: allocate a room, price the
// booking, open a payment order, and persist — with the room-conflict
// recheck and the promo usage increment inside one store transaction.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()
	e.sweepStalePending(ctx)

	pkg, err := e.Catalog.GetPackage(ctx, req.PackageID)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if pkg == nil {
		return nil, NewNotFound("package", "unknown package: "+req.PackageID)
	}

	start, err := e.validateSlot(ctx, pkg, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	roomID, err := e.selectRoom(ctx, pkg, req.Date, start, allocOpts{})
	if err != nil {
		return nil, err
	}

	subtotal, err := e.quoteSubtotal(ctx, pkg, req.Extras)
	if err != nil {
		return nil, err
	}

	total := subtotal
	if req.PromoCode != "" {
		res, err := e.ValidatePromo(ctx, req.PromoCode, req.Date, req.Time, subtotal)
		if err != nil {
			return nil, err
		}
		if !res.Valid {
			switch res.Reason {
			case models.PromoReasonNotFound:
				return nil, NewNotFound("promo", "unknown promo code")
			case models.PromoReasonExhausted:
				return nil, NewConflict("promoExhausted", "promo code usage exhausted")
			default:
				return nil, NewValidation("promo:"+res.Reason, "promo code not applicable")
			}
		}
		total = res.NewTotal
	}

	token, err := NewChangeToken()
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		PackageID:     pkg.ID,
		RoomID:        roomID,
		Date:          req.Date,
		Start:         start,
		End:           start + e.Policy.BlockFor(pkg),
		Status:        models.StatusPending,
		TotalPrice:    total,
		PromoCode:     req.PromoCode,
		Extras:        req.Extras,
		ChangeToken:   token,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		CreatedAt:     e.Now(),
	}

	// A resolvable payment path must exist before anything is written; a
	// zero total needs no payment and is committed as paid outright.
	if total == 0 {
		b.Status = models.StatusPaid
	} else {
		ref, err := e.Payments.CreateOrder(ctx, total, req.Email, b.ID)
		if err != nil {
			return nil, NewUpstream("payment", "payment order creation failed: "+err.Error())
		}
		b.PaymentRef = ref
	}

	if err := e.Bookings.CreateWithPromo(ctx, b, req.PromoCode); err != nil {
		switch err {
		case bookingRepo.ErrSlotTaken:
			return nil, NewConflict("slotTaken", "the slot was just taken, pick another")
		case bookingRepo.ErrPromoExhausted:
			return nil, NewConflict("promoExhausted", "promo code usage exhausted")
		}
		return nil, NewUpstream("store", "booking write failed: "+err.Error())
	}

	logger.Info("booking created",
		zap.String("bookingId", b.ID), zap.String("roomId", b.RoomID),
		zap.String("date", b.Date), zap.Int("start", b.Start),
		zap.Float64("total", b.TotalPrice))

	manageURL := fmt.Sprintf("%s/booking/%s", e.PublicBaseURL, token)
	if err := e.Mailer.SendBookingConfirmed(ctx, b, manageURL); err != nil {
		logger.Warn("confirmation email not queued", zap.String("bookingId", b.ID), zap.Error(err))
	}
	return b, nil
}

// RescheduleBooking moves the booking identified by its change token to a
// new slot, preferring the room it already occupies, and consumes the token.
func (e *DefaultBookingEngine) RescheduleBooking(ctx context.Context, token string, req models.RescheduleRequest) (*models.Booking, error) {
	logger := utils.GetLogger()
	e.sweepStalePending(ctx)

	b, err := e.Bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if b == nil {
		return nil, NewNotFound("token", "unknown or already used change token")
	}
	if b.Status == models.StatusCancelled {
		return nil, NewConflict("alreadyCancelled", "booking is already cancelled")
	}

	pkg, err := e.Catalog.GetPackage(ctx, b.PackageID)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if pkg == nil {
		return nil, NewNotFound("package", "unknown package: "+b.PackageID)
	}

	start, err := e.validateSlot(ctx, pkg, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	roomID, err := e.selectRoom(ctx, pkg, req.Date, start, allocOpts{
		preferredRoom:    b.RoomID,
		excludeBookingID: b.ID,
	})
	if err != nil {
		return nil, err
	}

	end := start + e.Policy.BlockFor(pkg)
	if err := e.Bookings.Reschedule(ctx, b.ID, token, roomID, req.Date, start, end); err != nil {
		switch err {
		case bookingRepo.ErrSlotTaken:
			return nil, NewConflict("slotTaken", "the slot was just taken, pick another")
		case bookingRepo.ErrTokenNotFound:
			return nil, NewNotFound("token", "unknown or already used change token")
		}
		return nil, NewUpstream("store", "reschedule write failed: "+err.Error())
	}

	b.RoomID = roomID
	b.Date = req.Date
	b.Start = start
	b.End = end
	b.ChangeToken = ""

	logger.Info("booking rescheduled",
		zap.String("bookingId", b.ID), zap.String("roomId", roomID),
		zap.String("date", req.Date), zap.Int("start", start))

	if err := e.Mailer.SendBookingRescheduled(ctx, b); err != nil {
		logger.Warn("reschedule email not queued", zap.String("bookingId", b.ID), zap.Error(err))
	}
	return b, nil
}

// CancelBooking consumes the change token and marks the booking cancelled.
// At-most-once: the token is cleared with the same write, so a second cancel
// with the same token fails NotFound.
func (e *DefaultBookingEngine) CancelBooking(ctx context.Context, token string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := e.Bookings.CancelByToken(ctx, token)
	if err != nil {
		if err == bookingRepo.ErrTokenNotFound {
			return nil, NewNotFound("token", "unknown or already used change token")
		}
		return nil, NewUpstream("store", "cancel write failed: "+err.Error())
	}

	logger.Info("booking cancelled", zap.String("bookingId", b.ID))

	if err := e.Mailer.SendBookingCancelled(ctx, b); err != nil {
		logger.Warn("cancellation email not queued", zap.String("bookingId", b.ID), zap.Error(err))
	}
	return b, nil
}

// GetBookingByToken returns the booking the token currently points at.
func (e *DefaultBookingEngine) GetBookingByToken(ctx context.Context, token string) (*models.Booking, error) {
	b, err := e.Bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, NewUpstream("store", err.Error())
	}
	if b == nil {
		return nil, NewNotFound("token", "unknown or already used change token")
	}
	return b, nil
}

// RecordPaymentStatus applies an upstream payment-status callback to the
// booking holding the payment reference.
func (e *DefaultBookingEngine) RecordPaymentStatus(ctx context.Context, ref, status string) error {
	if status != models.StatusDeposit && status != models.StatusPaid {
		return NewValidation("badStatus", "status must be deposit or paid")
	}
	if err := e.Bookings.SetStatusByPaymentRef(ctx, ref, status); err != nil {
		if err == bookingRepo.ErrPaymentRefNotFound {
			return NewNotFound("paymentRef", "no booking for payment reference")
		}
		return NewUpstream("store", "status update failed: "+err.Error())
	}
	utils.GetLogger().Info("payment status recorded",
		zap.String("paymentRef", ref), zap.String("status", status))
	return nil
}
