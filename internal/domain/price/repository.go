package price

import (
	"context"

	"github.com/meteroid-oss/meteroid/internal/types"
)

// Repository defines persistence operations for price components. Components are
// immutable once referenced by a subscription; Update is restricted to metadata
// and lookup_key, never to the Fee itself (§4.2 versions via a new component row).
type Repository interface {
	Create(ctx context.Context, component *PriceComponent) error
	Get(ctx context.Context, tenantID, id string) (*PriceComponent, error)
	GetByPlanID(ctx context.Context, tenantID, planID string) ([]*PriceComponent, error)
	List(ctx context.Context, filter *types.PriceFilter) ([]*PriceComponent, error)
	Count(ctx context.Context, filter *types.PriceFilter) (int, error)
	Update(ctx context.Context, component *PriceComponent) error
	Delete(ctx context.Context, tenantID, id string) error

	CreateBulk(ctx context.Context, components []*PriceComponent) error
}
