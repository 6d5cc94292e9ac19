package subscription

import (
	"context"

	"github.com/meteroid-oss/meteroid/internal/types"
)

// ComponentRepository defines persistence operations for subscription components.
type ComponentRepository interface {
	Create(ctx context.Context, component *SubscriptionComponent) error
	CreateBulk(ctx context.Context, components []*SubscriptionComponent) error
	Get(ctx context.Context, id string) (*SubscriptionComponent, error)
	Update(ctx context.Context, component *SubscriptionComponent) error
	Delete(ctx context.Context, id string) error
	ListBySubscription(ctx context.Context, sub *Subscription) ([]*SubscriptionComponent, error)
	List(ctx context.Context, filter *types.SubscriptionComponentFilter) ([]*SubscriptionComponent, error)
}
