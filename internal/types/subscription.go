package types

import (
	"time"

	ierr "github.com/meteroid-oss/meteroid/internal/errors"
	"github.com/samber/lo"
)

// SubscriptionLineItemEntityType differentiates a plan-level component from an add-on.
type SubscriptionLineItemEntityType string

const (
	SubscriptionLineItemEntityTypePlan  SubscriptionLineItemEntityType = "plan"
	SubscriptionLineItemEntityTypeAddon SubscriptionLineItemEntityType = "addon"
)

// SubscriptionStatus is the subscription lifecycle state, per §3/§4.6's state machine:
// PendingActivation -> TrialActive -> Active/TrialExpired -> Canceled/Ended.
type SubscriptionStatus string

const (
	SubscriptionStatusPendingActivation SubscriptionStatus = "PENDING_ACTIVATION"
	SubscriptionStatusTrialActive       SubscriptionStatus = "TRIAL_ACTIVE"
	SubscriptionStatusActive            SubscriptionStatus = "ACTIVE"
	SubscriptionStatusTrialExpired      SubscriptionStatus = "TRIAL_EXPIRED"
	SubscriptionStatusCanceled          SubscriptionStatus = "CANCELED"
	SubscriptionStatusEnded             SubscriptionStatus = "ENDED"
)

var subscriptionStatusValues = []SubscriptionStatus{
	SubscriptionStatusPendingActivation,
	SubscriptionStatusTrialActive,
	SubscriptionStatusActive,
	SubscriptionStatusTrialExpired,
	SubscriptionStatusCanceled,
	SubscriptionStatusEnded,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) Validate() error {
	if !lo.Contains(subscriptionStatusValues, s) {
		return ierr.NewError("invalid subscription status").
			WithHint("Invalid subscription status").
			WithReportableDetails(map[string]any{
				"status":         s,
				"allowed_status": subscriptionStatusValues,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// subscriptionStatusTransitions enumerates the legal edges of §4.6's state machine.
// Status transitions are monotonic except Active<->TrialExpired on grace resolution.
var subscriptionStatusTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionStatusPendingActivation: {SubscriptionStatusActive, SubscriptionStatusTrialActive},
	SubscriptionStatusTrialActive:       {SubscriptionStatusActive, SubscriptionStatusTrialExpired},
	SubscriptionStatusTrialExpired:      {SubscriptionStatusActive, SubscriptionStatusCanceled},
	SubscriptionStatusActive:            {SubscriptionStatusCanceled, SubscriptionStatusEnded, SubscriptionStatusTrialExpired},
	SubscriptionStatusCanceled:          {},
	SubscriptionStatusEnded:             {},
}

// CanTransitionTo reports whether moving from s to next is a legal §4.6 transition.
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	return lo.Contains(subscriptionStatusTransitions[s], next)
}

// SubscriptionFilter represents filters for subscription queries
type SubscriptionFilter struct {
	*QueryFilter
	*TimeRangeFilter

	Filters []*FilterCondition `json:"filters,omitempty" form:"filters" validate:"omitempty"`
	Sort    []*SortCondition   `json:"sort,omitempty" form:"sort" validate:"omitempty"`

	SubscriptionIDs []string `json:"subscription_ids,omitempty" form:"subscription_ids"`
	// CustomerID filters by customer ID
	CustomerID string `json:"customer_id,omitempty" form:"customer_id"`
	// PlanID filters by plan ID
	PlanID string `json:"plan_id,omitempty" form:"plan_id"`
	// SubscriptionStatus filters by subscription status
	SubscriptionStatus []SubscriptionStatus `json:"subscription_status,omitempty" form:"subscription_status"`
	// BillingPeriod filters by billing period
	BillingPeriod []BillingPeriod `json:"billing_period,omitempty" form:"billing_period"`
	// SubscriptionStatusNotIn filters by subscription status not in the list
	SubscriptionStatusNotIn []SubscriptionStatus `json:"-"`
	// ActiveAt filters subscriptions that are active at the given time
	ActiveAt *time.Time `json:"active_at,omitempty" form:"active_at"`

	// WithComponents includes price components in the response
	WithComponents bool `json:"with_components,omitempty" form:"with_components"`
}

// NewSubscriptionFilter creates a new SubscriptionFilter with default values
func NewSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitSubscriptionFilter creates a new SubscriptionFilter with no pagination limits
func NewNoLimitSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

// Validate validates the subscription filter
func (f SubscriptionFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}

	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}

	for _, status := range f.SubscriptionStatus {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	for _, period := range f.BillingPeriod {
		if !period.Validate() {
			return ierr.NewError("invalid billing period").
				WithHint("Invalid billing period filter value").
				WithReportableDetails(map[string]any{"provided_value": period}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// GetLimit implements BaseFilter interface
func (f *SubscriptionFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements BaseFilter interface
func (f *SubscriptionFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

// GetSort implements BaseFilter interface
func (f *SubscriptionFilter) GetSort() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetSort()
	}
	return f.QueryFilter.GetSort()
}

// GetOrder implements BaseFilter interface
func (f *SubscriptionFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

// GetStatus implements BaseFilter interface
func (f *SubscriptionFilter) GetStatus() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

// GetExpand implements BaseFilter interface
func (f *SubscriptionFilter) GetExpand() Expand {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetExpand()
	}
	return f.QueryFilter.GetExpand()
}

func (f *SubscriptionFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}

// SubscriptionChangeType defines the type of subscription plan change, used to pick
// the proration direction for the ApplyPlanChange scheduled event.
type SubscriptionChangeType string

const (
	SubscriptionChangeTypeUpgrade   SubscriptionChangeType = "upgrade"
	SubscriptionChangeTypeDowngrade SubscriptionChangeType = "downgrade"
	SubscriptionChangeTypeLateral   SubscriptionChangeType = "lateral"
)

var SubscriptionChangeTypeValues = []SubscriptionChangeType{
	SubscriptionChangeTypeUpgrade,
	SubscriptionChangeTypeDowngrade,
	SubscriptionChangeTypeLateral,
}

func (s SubscriptionChangeType) String() string {
	return string(s)
}

func (s SubscriptionChangeType) Validate() error {
	if !lo.Contains(SubscriptionChangeTypeValues, s) {
		return ierr.NewError("invalid subscription change type").
			WithHint("Subscription change type must be upgrade, downgrade, or lateral").
			WithReportableDetails(map[string]any{
				"allowed_values": SubscriptionChangeTypeValues,
				"provided_value": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
