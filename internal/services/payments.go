package services

import (
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentService wraps the Stripe payment-intent API.
type PaymentService struct{}

func NewPaymentService(secretKey string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{}
}

// MinorUnits converts a major-unit price into the minor units Stripe expects.
// Fixed x100 scale: assumes a two-decimal-digit currency.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates a card payment intent and returns its client secret,
// which the frontend uses to complete the charge.
func (s *PaymentService) CreateIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
