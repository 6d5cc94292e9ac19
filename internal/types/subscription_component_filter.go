package types

// SubscriptionComponentFilter defines filters for querying subscription components.
type SubscriptionComponentFilter struct {
	*QueryFilter
	*TimeRangeFilter

	SubscriptionIDs []string
	CustomerIDs     []string
	PriceComponentIDs []string
	Currencies      []string
	BillingPeriods  []string
}
