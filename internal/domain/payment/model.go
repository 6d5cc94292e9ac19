package payment

import (
	"time"

	ierr "github.com/meteroid-oss/meteroid/internal/errors"
	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// Payment represents a payment transaction
type Payment struct {
	// Unique identifier for this payment transaction
	ID string `db:"id" json:"id"`
	// Unique key used in the idempotency_key field to prevent duplicate payment processing
	IdempotencyKey string `db:"idempotency_key" json:"idempotency_key"`
	// The destination_type indicates what entity this payment is being made to (invoice, subscription, etc.)
	DestinationType types.PaymentDestinationType `db:"destination_type" json:"destination_type"`
	// The destination_id specifies which specific entity is receiving this payment
	DestinationID string `db:"destination_id" json:"destination_id"`
	// The payment_method_type defines how the payment will be processed (credit_card, bank_transfer, offline, etc.)
	PaymentMethodType types.PaymentMethodType `db:"payment_method_type" json:"payment_method_type"`
	// The payment_method_id identifies which specific payment method to use for processing
	PaymentMethodID string `db:"payment_method_id" json:"payment_method_id"`
	// The payment_gateway field contains the name of the gateway used to process this transaction (optional)
	PaymentGateway *string `db:"payment_gateway" json:"payment_gateway,omitempty"`
	// The gateway_payment_id is the transaction identifier from the external payment gateway (optional)
	GatewayPaymentID *string `db:"gateway_payment_id" json:"gateway_payment_id,omitempty"`
	// The gateway_tracking_id is the tracking identifier from the external payment gateway (optional)
	GatewayTrackingID *string `db:"gateway_tracking_id" json:"gateway_tracking_id,omitempty"`
	// The gateway_metadata field contains gateway-specific metadata (optional)
	GatewayMetadata types.Metadata `db:"gateway_metadata" json:"gateway_metadata,omitempty"`
	// The amount field specifies the payment value in the given currency
	Amount decimal.Decimal `db:"amount" json:"amount"`
	// The currency field uses a three-letter ISO code (USD, EUR, GBP, etc.)
	Currency string `db:"currency" json:"currency"`
	// The payment_status shows the current state of this payment (pending, succeeded, failed, etc.)
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`
	// The track_attempts flag indicates whether payment processing attempts are being monitored
	TrackAttempts bool `db:"track_attempts" json:"track_attempts"`
	// The metadata field contains additional custom key-value pairs for this payment (optional)
	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`
	// The succeeded_at timestamp shows when this payment was successfully completed (optional)
	SucceededAt *time.Time `db:"succeeded_at" json:"succeeded_at,omitempty"`
	// The failed_at timestamp indicates when this payment failed (optional)
	FailedAt *time.Time `db:"failed_at" json:"failed_at,omitempty"`
	// The refunded_at timestamp shows when this payment was refunded (optional)
	RefundedAt *time.Time `db:"refunded_at" json:"refunded_at,omitempty"`
	// The recorded_at timestamp indicates when this payment was manually recorded (optional)
	RecordedAt *time.Time `db:"recorded_at" json:"recorded_at,omitempty"`
	// The error_message field provides details about why the payment failed (optional)
	ErrorMessage *string `db:"error_message" json:"error_message,omitempty"`
	// The attempts array contains all processing attempts made for this payment (optional);
	// not a real column, populated by the repository from payment_attempts.
	Attempts []*PaymentAttempt `db:"-" json:"attempts,omitempty"`
	// The environment_id identifies which environment this payment belongs to
	EnvironmentID string `db:"environment_id" json:"environment_id"`

	types.BaseModel
}

// PaymentAttempt represents an attempt to process a payment
type PaymentAttempt struct {
	// Unique identifier for this specific payment attempt
	ID string `db:"id" json:"id"`
	// The payment_id links this attempt to its parent payment transaction
	PaymentID string `db:"payment_id" json:"payment_id"`
	// The attempt_number shows the sequential order of this processing attempt
	AttemptNumber int `db:"attempt_number" json:"attempt_number"`
	// The payment_status indicates the outcome of this specific attempt (pending, succeeded, failed, etc.)
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`
	// The gateway_attempt_id is the identifier from the external payment gateway for this attempt (optional)
	GatewayAttemptID *string `db:"gateway_attempt_id" json:"gateway_attempt_id,omitempty"`
	// The error_message field explains why this particular attempt failed (optional)
	ErrorMessage *string `db:"error_message" json:"error_message,omitempty"`
	// The metadata field stores additional custom data for this attempt (optional)
	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`
	// The environment_id specifies which environment this attempt belongs to
	EnvironmentID string `db:"environment_id" json:"environment_id"`

	types.BaseModel
}

// Validate validates the payment
func (p *Payment) Validate() error {
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if err := p.DestinationType.Validate(); err != nil {
		return ierr.NewError("invalid destination type").
			WithHint("Destination type is invalid").
			Mark(ierr.ErrValidation)
	}
	if p.DestinationID == "" {
		return ierr.NewError("invalid destination id").
			WithHint("Destination id is invalid").
			Mark(ierr.ErrValidation)
	}
	if p.PaymentMethodType == "" {
		return ierr.NewError("invalid payment method type").
			WithHint("Payment method type is invalid").
			Mark(ierr.ErrValidation)
	}
	if p.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is invalid").
			Mark(ierr.ErrValidation)
	}

	// payment method type validations
	if p.PaymentMethodType == types.PaymentMethodTypeOffline {
		if p.PaymentMethodID != "" {
			return ierr.NewError("payment method id is not allowed for offline payment method type").
				WithHint("Payment method id is invalid").
				Mark(ierr.ErrValidation)
		}
	} else if p.PaymentMethodType == types.PaymentMethodTypePaymentLink {
		// For payment links, payment method ID should be empty
		if p.PaymentMethodID != "" {
			return ierr.NewError("payment method id is not allowed for payment link method type").
				WithHint("Payment method id is invalid for payment links").
				Mark(ierr.ErrValidation)
		}
	} else if p.PaymentMethodType == types.PaymentMethodTypeCard {
		// For card payments, payment method ID is optional - it will be fetched automatically if empty
		// No validation needed here as the payment processor will handle fetching the saved payment method
	} else if p.PaymentMethodID == "" {
		return ierr.NewError("invalid payment method id").
			WithHint("Payment method id is invalid").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Validate validates the payment attempt
func (pa *PaymentAttempt) Validate() error {
	if pa.PaymentID == "" {
		return ierr.NewError("invalid payment id").
			WithHint("Payment id is invalid").
			Mark(ierr.ErrValidation)
	}
	if pa.AttemptNumber <= 0 {
		return ierr.NewError("invalid attempt number").
			WithHint("Attempt number is invalid").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TableName returns the table name for the payment
func (p *Payment) TableName() string {
	return "payments"
}

// TableName returns the table name for the payment attempt
func (pa *PaymentAttempt) TableName() string {
	return "payment_attempts"
}

