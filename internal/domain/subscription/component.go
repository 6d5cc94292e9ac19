package subscription

import (
	"time"

	"github.com/meteroid-oss/meteroid/internal/domain/price"
	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// SubscriptionComponent is a per-subscription snapshot of a PriceComponent (or a
// plan-less AddOn). The Fee is copied at subscription-creation/change time so that
// later edits to the plan's price component never retroactively change an active
// subscription's billing — only a new SubscriptionComponent (via a subscription
// change) can alter it.
type SubscriptionComponent struct {
	ID             string `db:"id" json:"id"`
	SubscriptionID string `db:"subscription_id" json:"subscription_id"`
	CustomerID     string `db:"customer_id" json:"customer_id"`

	PriceComponentID *string `db:"price_component_id" json:"price_component_id,omitempty"`
	IsAddOn          bool    `db:"is_add_on" json:"is_add_on"`

	DisplayName string              `db:"display_name" json:"display_name,omitempty"`
	Currency    string              `db:"currency" json:"currency"`
	Period      types.BillingPeriod `db:"billing_period" json:"billing_period"`

	FeeType      types.FeeType       `db:"fee_type" json:"fee_type"`
	RateFee      *price.RateFee      `db:"rate_fee" json:"rate_fee,omitempty"`
	RecurringFee *price.RecurringFee `db:"recurring_fee" json:"recurring_fee,omitempty"`
	OneTimeFee   *price.OneTimeFee   `db:"one_time_fee" json:"one_time_fee,omitempty"`
	SlotFee      *price.SlotFee      `db:"slot_fee" json:"slot_fee,omitempty"`
	CapacityFee  *price.CapacityFee  `db:"capacity_fee" json:"capacity_fee,omitempty"`
	UsageFee     *price.UsageFee     `db:"usage_fee" json:"usage_fee,omitempty"`

	StartDate time.Time  `db:"start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`

	SubscriptionPhaseID *string        `db:"subscription_phase_id" json:"subscription_phase_id,omitempty"`
	Metadata            types.Metadata `db:"metadata" json:"metadata,omitempty"`

	types.BaseModel
}

// IsActive returns true if the component is active at time t.
func (c *SubscriptionComponent) IsActive(t time.Time) bool {
	if c.Status != types.StatusPublished {
		return false
	}
	if c.StartDate.IsZero() || c.StartDate.After(t) {
		return false
	}
	if c.EndDate != nil && c.EndDate.Before(t) {
		return false
	}
	return true
}

func (c *SubscriptionComponent) IsUsage() bool {
	return c.FeeType == types.FeeTypeUsage && c.UsageFee != nil
}

// GetPeriod clamps the default invoicing period to the component's own
// start/end bounds, so a component added or removed mid-subscription only
// bills for the days it was active.
func (c *SubscriptionComponent) GetPeriod(defaultPeriodStart, defaultPeriodEnd time.Time) (time.Time, time.Time) {
	return c.GetPeriodStart(defaultPeriodStart), c.GetPeriodEnd(defaultPeriodEnd)
}

func (c *SubscriptionComponent) GetPeriodStart(defaultPeriodStart time.Time) time.Time {
	if !c.StartDate.IsZero() && (c.StartDate.After(defaultPeriodStart) || c.StartDate.Equal(defaultPeriodStart)) {
		return c.StartDate
	}
	return defaultPeriodStart
}

func (c *SubscriptionComponent) GetPeriodEnd(defaultPeriodEnd time.Time) time.Time {
	if c.EndDate != nil && (c.EndDate.Before(defaultPeriodEnd) || c.EndDate.Equal(defaultPeriodEnd)) {
		return *c.EndDate
	}
	return defaultPeriodEnd
}

// Quantity returns the configured quantity for fee variants that carry one;
// Slot and Capacity/Usage variants derive quantity from external clients instead.
func (c *SubscriptionComponent) Quantity() decimal.Decimal {
	switch c.FeeType {
	case types.FeeTypeRecurring:
		if c.RecurringFee != nil {
			return c.RecurringFee.Quantity
		}
	case types.FeeTypeOneTime:
		if c.OneTimeFee != nil {
			return c.OneTimeFee.Quantity
		}
	}
	return decimal.NewFromInt(1)
}
