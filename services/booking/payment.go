package booking

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentHandler creates payment intents for card bookings.
type PaymentHandler interface {
	// CreateIntent registers a payment for the given amount and returns
	// the processor's intent ID.
	CreateIntent(ctx context.Context, amount float64, bookingID string) (string, error)
}

// StripePaymentHandler implements PaymentHandler on Stripe PaymentIntents.
type StripePaymentHandler struct {
	logger   *zap.Logger
	currency string
}

// NewStripePaymentHandler constructs the handler. The Stripe API key is
// set process-wide at startup.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger, currency: string(stripe.CurrencyUSD)}
}

// CreateIntent creates a Stripe PaymentIntent for the booking amount.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, amount float64, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(h.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", bookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}

	h.logger.Info("Payment intent created",
		zap.String("bookingId", bookingID),
		zap.String("intentId", intent.ID),
		zap.Float64("amount", amount))
	return intent.ID, nil
}
