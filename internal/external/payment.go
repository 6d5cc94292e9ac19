package external

import (
	"context"
	"encoding/json"

	"github.com/meteroid-oss/meteroid/internal/config"
	ierr "github.com/meteroid-oss/meteroid/internal/errors"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

// ChargeRequest is the narrow input the §4.11 Payment Coordinator hands to a
// PaymentProvider for a single off-session charge attempt.
type ChargeRequest struct {
	IdempotencyKey    string
	CustomerProviderID string
	Amount            decimal.Decimal
	Currency          string
	Metadata          map[string]string
}

// ChargeResult is the provider-agnostic outcome of a charge attempt.
type ChargeResult struct {
	ProviderPaymentID string
	Status            string
	FailureMessage    string
}

// WebhookEvent is the provider-agnostic shape a Payment Coordinator
// orchestrator reacts to once a connector has verified and decoded it.
type WebhookEvent struct {
	Type              string
	ProviderPaymentID string
	Status            string
	Metadata          map[string]string
}

// PaymentProvider is the narrow interface the Payment Coordinator depends on.
// Connectors for other gateways (Adyen, PayPal, offline/manual) implement the
// same interface so the coordinator never imports a gateway SDK directly.
type PaymentProvider interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// stripeProvider is the PaymentProvider backed by the Stripe API. API key is
// set on the package-level stripe.Key, following the package-level
// resource-function style (customer.New, subscription.New) the pack's other
// stripe-go/v82 integration uses rather than the older client.API wrapper.
type stripeProvider struct {
	webhookSecret string
	logger        *logger.Logger
}

func NewStripeProvider(cfg *config.Configuration, log *logger.Logger) PaymentProvider {
	stripe.Key = cfg.Payment.StripeSecret

	return &stripeProvider{
		webhookSecret: cfg.Payment.WebhookSecret,
		logger:        log,
	}
}

func (p *stripeProvider) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	amountCents := req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(req.Currency),
		Customer:           stripe.String(req.CustomerProviderID),
		Confirm:            stripe.Bool(true),
		OffSession:         stripe.Bool(true),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.SetIdempotencyKey(req.IdempotencyKey)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, ierr.NewError("failed to create Stripe payment intent").
			WithHint("Stripe API error").
			Mark(ierr.ErrHTTPClient)
	}

	result := &ChargeResult{
		ProviderPaymentID: intent.ID,
		Status:            string(intent.Status),
	}
	if intent.LastPaymentError != nil {
		result.FailureMessage = intent.LastPaymentError.Msg
	}
	return result, nil
}

func (p *stripeProvider) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, ierr.NewError("failed to verify Stripe webhook signature").
			WithHint("signature did not match the configured webhook secret").
			Mark(ierr.ErrPermissionDenied)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, ierr.NewError("failed to decode Stripe webhook payload").
			Mark(ierr.ErrValidation)
	}

	metadata := make(map[string]string, len(intent.Metadata))
	for k, v := range intent.Metadata {
		metadata[k] = v
	}

	return &WebhookEvent{
		Type:              string(event.Type),
		ProviderPaymentID: intent.ID,
		Status:            string(intent.Status),
		Metadata:          metadata,
	}, nil
}
