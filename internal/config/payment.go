package config

import (
	"context"
	"log"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.uber.org/fx"
)

type StripeConfig struct {
	SecretKey string
}

func NewStripeConfig() *StripeConfig {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		log.Fatal("STRIPE_SECRET_KEY not set")
	}
	return &StripeConfig{SecretKey: key}
}

// PaymentService creates card payment intents with Stripe and hands the
// client secret back to the caller. No retries or idempotency keys.
type PaymentService struct {
	config *StripeConfig
}

func NewPaymentService(lc fx.Lifecycle, config *StripeConfig) *PaymentService {
	stripe.Key = config.SecretKey
	service := &PaymentService{config: config}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Payment service initialized")
			return nil
		},
	})
	return service
}

func (p *PaymentService) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
