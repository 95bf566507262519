package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"roomly/config"
	"roomly/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

const upstreamTimeout = 10 * time.Second

// StripeGateway implements Gateway on Stripe PaymentIntents.
type StripeGateway struct {
	Currency string
}

// NewStripeGateway constructs the production gateway. stripe.Key must be set
// before first use (done in main from config).
func NewStripeGateway() *StripeGateway {
	return &StripeGateway{Currency: config.AppConfig.Currency}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, amount float64, email, bookingID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(int64(math.Round(amount * 100))),
		Currency:     stripe.String(g.Currency),
		ReceiptEmail: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent creation failed: %w", err)
	}
	utils.GetLogger().Info("payment order created",
		zap.String("bookingId", bookingID), zap.String("paymentRef", pi.ID))
	return pi.ID, nil
}

func (g *StripeGateway) OrderPlaced(ctx context.Context, ref string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := paymentintent.Get(ref, params)
	if err != nil {
		return false, fmt.Errorf("stripe payment intent lookup failed: %w", err)
	}
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresCapture:
		return true, nil
	}
	return false, nil
}
