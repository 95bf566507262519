package bookingRepo

import (
	"context"
	"errors"
	"time"

	"roomly/models"
)

// Sentinel errors surfaced by the transactional write paths so the engine
// can map them to its Conflict/NotFound taxonomy.
var (
	// ErrSlotTaken means the in-transaction conflict recheck found an
	// overlapping active booking for the target room.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrPromoExhausted means the conditional promo-usage increment matched
	// nothing: the code hit its usage limit between validation and commit.
	ErrPromoExhausted = errors.New("promo code usage exhausted")
	// ErrTokenNotFound means no active booking carries the given change token.
	ErrTokenNotFound = errors.New("change token not found")
	// ErrPaymentRefNotFound means no booking carries the payment reference.
	ErrPaymentRefNotFound = errors.New("payment reference not found")
)

// BookingRepository is the engine's view of the shared booking store. All
// mutations that touch contended resources (room schedule, promo usage) run
// inside a single Mongo transaction so two concurrent writers cannot both
// win the same slot.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByToken returns (nil, nil) when no booking carries the token.
	GetByToken(ctx context.Context, token string) (*models.Booking, error)
	GetByPaymentRef(ctx context.Context, ref string) (*models.Booking, error)

	// ListActiveByRoomDate returns all non-cancelled bookings for a room on
	// a date.
	ListActiveByRoomDate(ctx context.Context, roomID, date string) ([]models.Booking, error)
	ListActiveByRoomsDate(ctx context.Context, roomIDs []string, date string) ([]models.Booking, error)

	// CreateWithPromo inserts the booking after re-validating, inside the
	// same transaction, that its [Start, End) interval conflicts with no
	// active booking on the room. When promoCode is non-empty the promo's
	// used_count is incremented in the same transaction, guarded by its
	// usage limit. Returns ErrSlotTaken or ErrPromoExhausted on the
	// respective failures.
	CreateWithPromo(ctx context.Context, booking *models.Booking, promoCode string) error

	// Reschedule moves the booking identified by (id, token) to the new
	// room/date/interval and clears the change token, re-validating absence
	// of conflict transactionally. Returns ErrSlotTaken or ErrTokenNotFound.
	Reschedule(ctx context.Context, id, token, roomID, date string, start, end int) error

	// CancelByToken flips the booking carrying token to cancelled and clears
	// the token, returning the updated booking. Returns ErrTokenNotFound
	// when the token is absent or already consumed.
	CancelByToken(ctx context.Context, token string) (*models.Booking, error)

	SetStatusByPaymentRef(ctx context.Context, ref, status string) error

	// ListStalePending returns pending bookings created before the cutoff.
	ListStalePending(ctx context.Context, before time.Time) ([]models.Booking, error)
	DeleteByIDs(ctx context.Context, ids []string) error

	EnsureIndexes(ctx context.Context) error
}
