package invoice

import (
	"fmt"
	"time"

	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model
type Invoice struct {
	ID              string                     `db:"id" json:"id"`
	CustomerID      string                     `db:"customer_id" json:"customer_id"`
	SubscriptionID  *string                    `db:"subscription_id" json:"subscription_id,omitempty"`
	InvoiceType     types.InvoiceType          `db:"invoice_type" json:"invoice_type"`
	InvoiceStatus   types.InvoiceStatus        `db:"invoice_status" json:"invoice_status"`
	PaymentStatus   types.InvoicePaymentStatus `db:"payment_status" json:"payment_status"`
	Currency        string                     `db:"currency" json:"currency"`
	AmountDue       decimal.Decimal            `db:"amount_due" json:"amount_due"`
	AmountPaid      decimal.Decimal            `db:"amount_paid" json:"amount_paid"`
	AmountRemaining decimal.Decimal            `db:"amount_remaining" json:"amount_remaining"`
	Description     string                     `db:"description" json:"description,omitempty"`
	DueDate         *time.Time                 `db:"due_date" json:"due_date,omitempty"`
	PaidAt          *time.Time                 `db:"paid_at" json:"paid_at,omitempty"`
	VoidedAt        *time.Time                 `db:"voided_at" json:"voided_at,omitempty"`
	FinalizedAt     *time.Time                 `db:"finalized_at" json:"finalized_at,omitempty"`
	InvoicePDFURL   *string                    `db:"invoice_pdf_url" json:"invoice_pdf_url,omitempty"`
	BillingReason   string                     `db:"billing_reason" json:"billing_reason,omitempty"`
	Metadata        types.Metadata             `db:"metadata" json:"metadata,omitempty"`
	Version         int                        `db:"version" json:"version"`
	types.BaseModel
}

// Default helper methods

func (i *Invoice) GetRemainingAmount() decimal.Decimal {
	return i.AmountDue.Sub(i.AmountPaid)
}

func (i *Invoice) Validate() error {
	// amount validations
	if i.AmountDue.IsNegative() {
		return NewValidationError("amount_due", "must be non negative")
	}

	if i.AmountPaid.IsNegative() {
		return NewValidationError("amount_paid", "must be non negative")
	}

	if i.AmountPaid.GreaterThan(i.AmountDue) {
		return NewValidationError("amount_paid", "must be less than or equal to amount_due")
	}

	if i.AmountRemaining.IsNegative() {
		return NewValidationError("amount_remaining", "must be non negative")
	}

	if i.AmountRemaining.GreaterThan(i.AmountDue) {
		return NewValidationError("amount_remaining", "must be less than or equal to amount_due")
	}

	if !i.AmountPaid.Add(i.AmountRemaining).Equal(i.AmountDue) {
		return NewValidationError("amount", "amount_paid + amount_remaining must be equal to amount_due")
	}

	// Status validations
	if !i.AmountDue.IsZero() && i.AmountPaid.Equal(i.AmountDue) && i.PaymentStatus != types.InvoicePaymentStatusSucceeded {
		return NewValidationError("payment_status", fmt.Sprintf("must be %s if amount_paid is equal to amount_due", types.InvoicePaymentStatusSucceeded))
	}

	return nil
}
