package customer

import "github.com/meteroid-oss/meteroid/internal/types"

type Customer struct {
	// ID is the unique identifier for the customer
	ID string `db:"id" json:"id"`

	// ExternalID is the external identifier for the customer
	ExternalID string `db:"external_id" json:"external_id"`

	// Name is the name of the customer
	Name string `db:"name" json:"name"`

	// Email is the email of the customer
	Email string `db:"email" json:"email"`

	// Currency is the 3-letter ISO code customer invoices and subscriptions settle in
	Currency string `db:"currency" json:"currency"`

	// Timezone governs billing anchor and period boundary calculations for this customer
	Timezone string `db:"timezone" json:"timezone"`

	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`

	types.BaseModel
}
