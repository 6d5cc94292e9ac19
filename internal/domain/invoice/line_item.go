package invoice

import (
	"time"

	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// InvoiceLineItem represents a single line item in an invoice
type InvoiceLineItem struct {
	ID             string          `db:"id" json:"id"`
	InvoiceID      string          `db:"invoice_id" json:"invoice_id"`
	CustomerID     string          `db:"customer_id" json:"customer_id"`
	SubscriptionID *string         `db:"subscription_id" json:"subscription_id,omitempty"`
	PriceID        string          `db:"price_id" json:"price_id"`
	MeterID        *string         `db:"meter_id" json:"meter_id,omitempty"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	Currency       string          `db:"currency" json:"currency"`
	PeriodStart    *time.Time      `db:"period_start" json:"period_start,omitempty"`
	PeriodEnd      *time.Time      `db:"period_end" json:"period_end,omitempty"`
	Metadata       types.Metadata  `db:"metadata" json:"metadata,omitempty"`
	types.BaseModel
}

// Validate validates the invoice line item
func (i *InvoiceLineItem) Validate() error {
	if i.Amount.IsNegative() {
		return NewValidationError("amount", "must be non negative")
	}

	if i.Quantity.IsNegative() {
		return NewValidationError("quantity", "must be non negative")
	}

	if i.PeriodStart != nil && i.PeriodEnd != nil {
		if i.PeriodEnd.Before(*i.PeriodStart) {
			return NewValidationError("period_end", "must be after period_start")
		}
	}

	return nil
}
