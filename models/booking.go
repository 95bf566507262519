package models

import "time"

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusDeposit   = "deposit"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// BookingExtra is an extra item selected for a booking.
type BookingExtra struct {
	ItemID string `bson:"item_id" json:"id"`
	Count  int    `bson:"count" json:"count"`
}

// Booking represents a reserved session in a room.
type Booking struct {
	ID        string  `bson:"id" json:"id"`
	PackageID string  `bson:"package_id" json:"packageId"`
	RoomID    string  `bson:"room_id" json:"roomId"`
	Date      string  `bson:"date" json:"date"`   // "YYYY-MM-DD" in the configured civil timezone
	Start     int     `bson:"start" json:"start"` // minutes from midnight
	// End is Start + duration + cleanup; denormalized so overlap queries
	// stay cheap.
	End        int            `bson:"end" json:"end"`
	Status     string         `bson:"status" json:"status"`
	TotalPrice float64        `bson:"total_price" json:"totalPrice"`
	PromoCode  string         `bson:"promo_code,omitempty" json:"promoCode,omitempty"`
	Extras     []BookingExtra `bson:"extras,omitempty" json:"extras,omitempty"`
	// ChangeToken is the single-use secret that authorizes reschedule and
	// cancel. Cleared ($unset) exactly once when consumed.
	ChangeToken string `bson:"change_token,omitempty" json:"-"`
	// PaymentRef is the upstream payment order reference (stripe
	// PaymentIntent id). Empty for zero-total bookings.
	PaymentRef    string    `bson:"payment_ref,omitempty" json:"-"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerEmail string    `bson:"customer_email" json:"-"`
	CustomerPhone string    `bson:"customer_phone" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// TimeString renders Start as "HH:MM".
func (b Booking) TimeString() string {
	return MinutesToClock(b.Start)
}

// PublicBookingView is the owner-facing projection returned by the
// token-lookup endpoint. The change token itself travels only in the email
// link, never in API bodies.
type PublicBookingView struct {
	ID         string  `json:"id"`
	PackageID  string  `json:"packageId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
}

// PublicView builds the owner-facing projection for a booking.
func (b Booking) PublicView() PublicBookingView {
	return PublicBookingView{
		ID:         b.ID,
		PackageID:  b.PackageID,
		Date:       b.Date,
		Time:       b.TimeString(),
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
	}
}
