package booking

import (
	"context"
	"math"

	"roomly/models"
)

// QuoteSubtotal sums the package base price and the selected extras.
// Unknown extra item ids and non-positive counts are rejected before the
// allocator ever runs.
func (e *DefaultBookingEngine) QuoteSubtotal(ctx context.Context, packageID string, extras []models.BookingExtra) (float64, error) {
	pkg, err := e.Catalog.GetPackage(ctx, packageID)
	if err != nil {
		return 0, NewUpstream("store", err.Error())
	}
	if pkg == nil {
		return 0, NewNotFound("package", "unknown package: "+packageID)
	}
	return e.quoteSubtotal(ctx, pkg, extras)
}

func (e *DefaultBookingEngine) quoteSubtotal(ctx context.Context, pkg *models.Package, extras []models.BookingExtra) (float64, error) {
	total := pkg.Price
	if len(extras) == 0 {
		return total, nil
	}

	ids := make([]string, 0, len(extras))
	for _, ex := range extras {
		if ex.Count <= 0 {
			return 0, NewValidation("badExtras", "extra item count must be positive")
		}
		ids = append(ids, ex.ItemID)
	}

	items, err := e.Catalog.GetExtraItems(ctx, ids)
	if err != nil {
		return 0, NewUpstream("store", err.Error())
	}
	priceByID := make(map[string]float64, len(items))
	for _, it := range items {
		priceByID[it.ID] = it.Price
	}

	for _, ex := range extras {
		price, ok := priceByID[ex.ItemID]
		if !ok {
			return 0, NewValidation("badExtras", "unknown extra item: "+ex.ItemID)
		}
		total += price * float64(ex.Count)
	}
	return total, nil
}

// applyDiscount computes the discounted total: a fixed amount wins over a
// percentage when both are set, and the result never goes below zero.
func applyDiscount(subtotal float64, promo *models.PromoCode) (amount, percent, newTotal float64) {
	switch {
	case promo.DiscountAmount != nil:
		amount = *promo.DiscountAmount
		newTotal = subtotal - amount
	case promo.DiscountPercent != nil:
		percent = *promo.DiscountPercent
		amount = math.Round(subtotal * percent / 100)
		newTotal = subtotal - amount
	default:
		newTotal = subtotal
	}
	if newTotal < 0 {
		newTotal = 0
	}
	return amount, percent, newTotal
}
