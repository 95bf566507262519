package models

// PromoCode is a discount rule with temporal and usage constraints.
// Amount-based discount takes precedence over percent-based when both are set.
type PromoCode struct {
	Code            string   `bson:"code" json:"code"`
	DiscountAmount  *float64 `bson:"discount_amount,omitempty" json:"discountAmount,omitempty"`
	DiscountPercent *float64 `bson:"discount_percent,omitempty" json:"discountPercent,omitempty"`
	ValidFrom       string   `bson:"valid_from,omitempty" json:"validFrom,omitempty"` // "YYYY-MM-DD", inclusive
	ValidTo         string   `bson:"valid_to,omitempty" json:"validTo,omitempty"`     // "YYYY-MM-DD", inclusive
	TimeFrom        string   `bson:"time_from,omitempty" json:"timeFrom,omitempty"`   // "HH:MM", inclusive
	TimeTo          string   `bson:"time_to,omitempty" json:"timeTo,omitempty"`       // "HH:MM", inclusive
	UsageLimit      *int     `bson:"usage_limit,omitempty" json:"usageLimit,omitempty"`
	UsedCount       int      `bson:"used_count" json:"usedCount"`
}

// PromoResult is the outcome of validating a promo code against a booking.
type PromoResult struct {
	Valid           bool    `json:"valid"`
	Reason          string  `json:"reason,omitempty"`
	DiscountAmount  float64 `json:"discountAmount,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
	NewTotal        float64 `json:"newTotal"`
}

// Promo rejection reasons.
const (
	PromoReasonNotFound   = "notFound"
	PromoReasonWeekend    = "weekend"
	PromoReasonOutOfRange = "outOfRange"
	PromoReasonExhausted  = "exhausted"
	PromoReasonOutOfHours = "outOfHours"
)
