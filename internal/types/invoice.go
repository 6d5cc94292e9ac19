package types

import "time"

type InvoiceCadence string

const (
	// InvoiceCadenceArrear raises an invoice at the end of each billing period (in arrears)
	InvoiceCadenceArrear InvoiceCadence = "ARREAR"
	// InvoiceCadenceAdvance raises an invoice at the beginning of each billing period (in advance)
	InvoiceCadenceAdvance InvoiceCadence = "ADVANCE"
)

// InvoiceType distinguishes invoices generated by the billing cycle from
// one-off invoices raised outside the subscription lifecycle.
type InvoiceType string

const (
	InvoiceTypeSubscription InvoiceType = "SUBSCRIPTION"
	InvoiceTypeOneOff       InvoiceType = "ONE_OFF"
	InvoiceTypeCredit       InvoiceType = "CREDIT"
)

type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates invoice is in draft state and can be modified
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	// InvoiceStatusFinalized indicates invoice is finalized and ready for payment
	InvoiceStatusFinalized InvoiceStatus = "FINALIZED"
	// InvoiceStatusPaid indicates invoice has been paid
	InvoiceStatusPaid InvoiceStatus = "PAID"
	// InvoiceStatusVoided indicates invoice has been voided
	InvoiceStatusVoided InvoiceStatus = "VOIDED"
	// InvoiceStatusPartiallyPaid indicates invoice has been partially paid
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	// InvoiceStatusUncollectible indicates invoice is uncollectible
	InvoiceStatusUncollectible InvoiceStatus = "UNCOLLECTIBLE"
)

// InvoicePaymentStatus tracks the aggregate payment state of an invoice,
// distinct from InvoiceStatus which tracks its document lifecycle.
type InvoicePaymentStatus string

const (
	InvoicePaymentStatusPending   InvoicePaymentStatus = "PENDING"
	InvoicePaymentStatusProcessing InvoicePaymentStatus = "PROCESSING"
	InvoicePaymentStatusSucceeded InvoicePaymentStatus = "SUCCEEDED"
	InvoicePaymentStatusFailed    InvoicePaymentStatus = "FAILED"
	InvoicePaymentStatusPartial  InvoicePaymentStatus = "PARTIALLY_PAID"
)

type InvoiceBillingReason string

const (
	// InvoiceBillingReasonSubscriptionCreate indicates invoice is for subscription creation
	InvoiceBillingReasonSubscriptionCreate InvoiceBillingReason = "SUBSCRIPTION_CREATE"
	// InvoiceBillingReasonSubscriptionCycle indicates invoice is for subscription renewal
	InvoiceBillingReasonSubscriptionCycle InvoiceBillingReason = "SUBSCRIPTION_CYCLE"
	// InvoiceBillingReasonSubscriptionUpdate indicates invoice is for subscription update
	InvoiceBillingReasonSubscriptionUpdate InvoiceBillingReason = "SUBSCRIPTION_UPDATE"
	// InvoiceBillingReasonManual indicates invoice is created manually
	InvoiceBillingReasonManual InvoiceBillingReason = "MANUAL"
)

// CreditNoteStatus tracks the lifecycle of a credit note issued against a finalized invoice.
type CreditNoteStatus string

const (
	CreditNoteStatusDraft     CreditNoteStatus = "DRAFT"
	CreditNoteStatusFinalized CreditNoteStatus = "FINALIZED"
	CreditNoteStatusVoided    CreditNoteStatus = "VOIDED"
)

// CreditNoteType distinguishes a refund (money returned to the customer)
// from an adjustment (balance correction with no cash movement).
type CreditNoteType string

const (
	CreditNoteTypeRefund     CreditNoteType = "REFUND"
	CreditNoteTypeAdjustment CreditNoteType = "ADJUSTMENT"
)

// CreditNoteReason records why a credit note was issued.
type CreditNoteReason string

const (
	CreditNoteReasonDuplicate        CreditNoteReason = "DUPLICATE"
	CreditNoteReasonFraudulent       CreditNoteReason = "FRAUDULENT"
	CreditNoteReasonOrderChange      CreditNoteReason = "ORDER_CHANGE"
	CreditNoteReasonProduct          CreditNoteReason = "PRODUCT_UNSATISFACTORY"
	CreditNoteReasonCorrection       CreditNoteReason = "CORRECTION"
)

// InvoiceFilter represents the filter options for listing invoices
type InvoiceFilter struct {
	CustomerID     string          `json:"customer_id,omitempty"`
	SubscriptionID string          `json:"subscription_id,omitempty"`
	WalletID       string          `json:"wallet_id,omitempty"`
	Status         []InvoiceStatus `json:"status,omitempty"`
	StartTime      *time.Time      `json:"start_time,omitempty"`
	EndTime        *time.Time      `json:"end_time,omitempty"`
	Limit          int             `json:"limit,omitempty"`
	Offset         int             `json:"offset,omitempty"`
}
