package subscription

import (
	"time"

	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// ActivationCondition determines when a subscription transitions out of
// PendingActivation, per §3's "activation_condition ∈ {OnStart, OnCheckout,
// OnFirstPayment}".
type ActivationCondition string

const (
	ActivationConditionOnStart        ActivationCondition = "ON_START"
	ActivationConditionOnCheckout     ActivationCondition = "ON_CHECKOUT"
	ActivationConditionOnFirstPayment ActivationCondition = "ON_FIRST_PAYMENT"
)

// Subscription is the aggregate root of the billing lifecycle described in §3/§4.6.
type Subscription struct {
	ID         string `db:"id" json:"id"`
	CustomerID string `db:"customer_id" json:"customer_id"`

	// PlanVersionID is immutable once the subscription is created; plan changes
	// go through ApplyPlanChange, never by mutating this field in place.
	PlanVersionID string `db:"plan_version_id" json:"plan_version_id"`

	Currency string `db:"currency" json:"currency"`

	BillingStartDate time.Time  `db:"billing_start_date" json:"billing_start_date"`
	BillingEndDate   *time.Time `db:"billing_end_date" json:"billing_end_date,omitempty"`

	// BillingDayAnchor is the day-of-month (1-31) used to compute period
	// boundaries; values beyond the days in a given month are clamped (§3).
	BillingDayAnchor int `db:"billing_day_anchor" json:"billing_day_anchor"`

	BillingPeriod types.BillingPeriod `db:"billing_period" json:"billing_period"`

	NetTerms int `db:"net_terms" json:"net_terms"`

	ActivationCondition ActivationCondition `db:"activation_condition" json:"activation_condition"`

	SubscriptionStatus types.SubscriptionStatus `db:"subscription_status" json:"subscription_status"`

	TrialEnd *time.Time `db:"trial_end" json:"trial_end,omitempty"`

	CurrentPeriodStart time.Time `db:"current_period_start" json:"current_period_start"`
	CurrentPeriodEnd   time.Time `db:"current_period_end" json:"current_period_end"`

	MRRCents int64 `db:"mrr_cents" json:"mrr_cents"`

	ActivatedAt *time.Time `db:"activated_at" json:"activated_at,omitempty"`
	CanceledAt  *time.Time `db:"canceled_at" json:"canceled_at,omitempty"`

	Version int `db:"version" json:"version"`

	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`

	Components []*SubscriptionComponent `json:"components,omitempty"`

	CustomerTimezone string `json:"customer_timezone"`

	types.BaseModel
}

// ActiveComponents returns the components that bill for the given instant.
func (s *Subscription) ActiveComponents(at time.Time) []*SubscriptionComponent {
	var out []*SubscriptionComponent
	for _, c := range s.Components {
		if c.IsActive(at) {
			out = append(out, c)
		}
	}
	return out
}

// IsInTrial reports whether t falls within the subscription's trial window.
func (s *Subscription) IsInTrial(t time.Time) bool {
	return s.TrialEnd != nil && t.Before(*s.TrialEnd)
}

// EstimatedMRR sums the monthly-normalized amount of Recurring/Rate/Slot fees
// across active components; Usage/Capacity overage is excluded since it is not
// predictable ahead of the period (flexprice's MRR convention for the same reason).
func (s *Subscription) EstimatedMRR(at time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.ActiveComponents(at) {
		switch c.FeeType {
		case types.FeeTypeRecurring:
			if c.RecurringFee != nil {
				total = total.Add(c.RecurringFee.Rate.Mul(c.RecurringFee.Quantity))
			}
		case types.FeeTypeRate:
			if c.RateFee != nil {
				total = total.Add(c.RateFee.Rate)
			}
		case types.FeeTypeSlot:
			if c.SlotFee != nil {
				total = total.Add(c.SlotFee.UnitRate.Mul(decimal.NewFromInt(int64(c.SlotFee.InitialSlots))))
			}
		}
	}
	return total
}
