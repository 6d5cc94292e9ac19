package tenant

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meteroid-oss/meteroid/internal/types"
)

// Tenant represents an organization or group within the system.
type Tenant struct {
	ID             string         `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Status         types.Status   `db:"status" json:"status"`
	BillingDetails BillingDetails `db:"billing_details" json:"billing_details"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// Address represents a physical address
type Address struct {
	Line1      string `json:"address_line1"`
	Line2      string `json:"address_line2"`
	City       string `json:"address_city"`
	State      string `json:"address_state"`
	PostalCode string `json:"address_postal_code"`
	Country    string `json:"address_country"`
}

// BillingDetails contains tenant billing information
type BillingDetails struct {
	Email     string  `json:"email"`
	HelpEmail string  `json:"help_email"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
}

// Value implements driver.Valuer so BillingDetails can be persisted as JSONB.
func (b BillingDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for reading a JSONB column back into BillingDetails.
func (b *BillingDetails) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("billing details: unsupported scan type %T", src)
	}
	return json.Unmarshal(bytes, b)
}

func (b *BillingDetails) ToMap() map[string]interface{} {
	bytes, err := json.Marshal(b)
	if err != nil {
		return nil
	}

	var m map[string]interface{}
	err = json.Unmarshal(bytes, &m)
	if err != nil {
		return m // return empty map if error
	}
	return m
}

