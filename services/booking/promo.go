package booking

import (
	"context"
	"time"

	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

// ValidatePromo checks a promo code against its temporal and usage
// constraints and computes the discounted total. Read-only: usage is
// consumed only inside the booking create transaction, never here, so price
// previews cannot burn usage.
//
// Rules run in a fixed order and the first failure wins: existence, weekday
// (promos never apply on Saturday or Sunday), validity date range, usage
// headroom, time-of-day window.
func (e *DefaultBookingEngine) ValidatePromo(ctx context.Context, code, date, clock string, subtotal float64) (models.PromoResult, error) {
	promo, err := e.Catalog.GetPromoByCode(ctx, code)
	if err != nil {
		return models.PromoResult{}, NewUpstream("store", err.Error())
	}
	if promo == nil {
		return models.PromoResult{Valid: false, Reason: models.PromoReasonNotFound, NewTotal: subtotal}, nil
	}

	day, err := e.Policy.ParseDate(date)
	if err != nil {
		return models.PromoResult{}, err
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return models.PromoResult{Valid: false, Reason: models.PromoReasonWeekend, NewTotal: subtotal}, nil
	}

	if promo.ValidFrom != "" && date < promo.ValidFrom {
		return models.PromoResult{Valid: false, Reason: models.PromoReasonOutOfRange, NewTotal: subtotal}, nil
	}
	if promo.ValidTo != "" && date > promo.ValidTo {
		return models.PromoResult{Valid: false, Reason: models.PromoReasonOutOfRange, NewTotal: subtotal}, nil
	}

	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return models.PromoResult{Valid: false, Reason: models.PromoReasonExhausted, NewTotal: subtotal}, nil
	}

	if promo.TimeFrom != "" || promo.TimeTo != "" {
		minutes, err := models.ClockToMinutes(clock)
		if err != nil {
			return models.PromoResult{}, NewValidation("badTime", err.Error())
		}
		// A malformed stored bound fails the window rather than widening
		// it: corrupt admin data must not make a promo apply at all hours.
		if promo.TimeFrom != "" {
			from, err := models.ClockToMinutes(promo.TimeFrom)
			if err != nil {
				utils.GetLogger().Warn("promo has malformed time window",
					zap.String("code", promo.Code), zap.String("timeFrom", promo.TimeFrom))
				return models.PromoResult{Valid: false, Reason: models.PromoReasonOutOfHours, NewTotal: subtotal}, nil
			}
			if minutes < from {
				return models.PromoResult{Valid: false, Reason: models.PromoReasonOutOfHours, NewTotal: subtotal}, nil
			}
		}
		if promo.TimeTo != "" {
			to, err := models.ClockToMinutes(promo.TimeTo)
			if err != nil {
				utils.GetLogger().Warn("promo has malformed time window",
					zap.String("code", promo.Code), zap.String("timeTo", promo.TimeTo))
				return models.PromoResult{Valid: false, Reason: models.PromoReasonOutOfHours, NewTotal: subtotal}, nil
			}
			if minutes > to {
				return models.PromoResult{Valid: false, Reason: models.PromoReasonOutOfHours, NewTotal: subtotal}, nil
			}
		}
	}

	amount, percent, newTotal := applyDiscount(subtotal, promo)
	return models.PromoResult{
		Valid:           true,
		DiscountAmount:  amount,
		DiscountPercent: percent,
		NewTotal:        newTotal,
	}, nil
}
