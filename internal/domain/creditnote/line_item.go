package creditnote

import (
	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// CreditNoteLineItem is the model entity for the CreditNoteLineItem schema.
type CreditNoteLineItem struct {
	ID                string          `db:"id" json:"id"`
	CreditNoteID      string          `db:"credit_note_id" json:"credit_note_id"`
	InvoiceLineItemID string          `db:"invoice_line_item_id" json:"invoice_line_item_id"`
	DisplayName       string          `db:"display_name" json:"display_name"`
	Amount            decimal.Decimal `db:"amount" json:"amount"`
	Quantity          decimal.Decimal `db:"quantity" json:"quantity"`
	Currency          string          `db:"currency" json:"currency"`
	Metadata          types.Metadata  `db:"metadata" json:"metadata"`
	types.BaseModel
}
