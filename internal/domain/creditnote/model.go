package creditnote

import (
	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// CreditNote is the model entity for the CreditNote schema.
type CreditNote struct {
	// id is the unique identifier for the credit note
	ID string `db:"id" json:"id"`

	// credit_note_number is the unique identifier for credit notes
	CreditNoteNumber string `db:"credit_note_number" json:"credit_note_number"`

	// invoice_id is the id of the invoice resource that this credit note is applied to
	InvoiceID string `db:"invoice_id" json:"invoice_id"`

	// customer_id is the unique identifier of the customer who owns this credit note
	CustomerID string `db:"customer_id" json:"customer_id"`

	// subscription_id is the optional unique identifier of the subscription related to this credit note
	SubscriptionID *string `db:"subscription_id" json:"subscription_id,omitempty"`

	// credit_note_status represents the current status of the credit note (e.g., draft, finalized, voided)
	CreditNoteStatus types.CreditNoteStatus `db:"credit_note_status" json:"credit_note_status"`

	// credit_note_type indicates the type of credit note (refund, adjustment)
	CreditNoteType types.CreditNoteType `db:"credit_note_type" json:"credit_note_type"`

	// refund_status represents the status of any refund associated with this credit note
	RefundStatus *types.PaymentStatus `db:"refund_status" json:"refund_status"`

	// reason specifies the reason for creating this credit note (duplicate, fraudulent, order_change, product_unsatisfactory)
	Reason types.CreditNoteReason `db:"reason" json:"reason"`

	// memo is an optional memo supplied on the credit note
	Memo string `db:"memo" json:"memo"`

	// currency is the three-letter ISO currency code (e.g., USD, EUR) for the credit note
	Currency string `db:"currency" json:"currency"`

	// metadata contains additional custom key-value pairs for storing extra information
	Metadata types.Metadata `db:"metadata" json:"metadata"`

	// line_items contains all of the line items associated with this credit note; not a real
	// column, populated by the repository from credit_note_line_items.
	LineItems []*CreditNoteLineItem `db:"-" json:"line_items"`

	// environment_id is the unique identifier of the environment this credit note belongs to
	EnvironmentID string `db:"environment_id" json:"environment_id"`

	// total_amount is the total including creditable invoice-level discounts or minimums, and tax
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`

	// idempotency_key is an optional key used to prevent duplicate credit note creation
	IdempotencyKey *string `db:"idempotency_key" json:"idempotency_key"`

	types.BaseModel
}

