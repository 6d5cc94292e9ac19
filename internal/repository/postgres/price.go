package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meteroid-oss/meteroid/internal/domain/price"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type priceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPriceRepository(db *postgres.DB, logger *logger.Logger) price.Repository {
	return &priceRepository{db: db, logger: logger}
}

const priceComponentColumns = `
	id, tenant_id, plan_id, name, currency, billing_period, fee_type,
	rate_fee, recurring_fee, one_time_fee, slot_fee, capacity_fee, usage_fee,
	lookup_key, metadata, status, created_at, updated_at, created_by, updated_by
`

func (r *priceRepository) Create(ctx context.Context, c *price.PriceComponent) error {
	query := `
		INSERT INTO price_components (` + priceComponentColumns + `)
		VALUES (
			:id, :tenant_id, :plan_id, :name, :currency, :billing_period, :fee_type,
			:rate_fee, :recurring_fee, :one_time_fee, :slot_fee, :capacity_fee, :usage_fee,
			:lookup_key, :metadata, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating price component", "price_component_id", c.ID, "plan_id", c.PlanID)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to insert price component: %w", err)
	}
	return nil
}

func (r *priceRepository) CreateBulk(ctx context.Context, components []*price.PriceComponent) error {
	for _, c := range components {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *priceRepository) Get(ctx context.Context, tenantID, id string) (*price.PriceComponent, error) {
	var c price.PriceComponent
	query := `SELECT * FROM price_components WHERE id = :id AND tenant_id = :tenant_id`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": tenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get price component: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("price component not found: %s", id)
	}
	if err := rows.StructScan(&c); err != nil {
		return nil, fmt.Errorf("failed to scan price component: %w", err)
	}
	return &c, nil
}

func (r *priceRepository) GetByPlanID(ctx context.Context, tenantID, planID string) ([]*price.PriceComponent, error) {
	query := `SELECT * FROM price_components WHERE plan_id = :plan_id AND tenant_id = :tenant_id ORDER BY created_at ASC`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"plan_id":   planID,
		"tenant_id": tenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list price components by plan: %w", err)
	}
	defer rows.Close()

	var components []*price.PriceComponent
	for rows.Next() {
		var c price.PriceComponent
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan price component: %w", err)
		}
		components = append(components, &c)
	}
	return components, nil
}

func (r *priceRepository) List(ctx context.Context, filter *types.PriceFilter) ([]*price.PriceComponent, error) {
	query := `SELECT * FROM price_components WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter != nil && len(filter.PlanIDs) > 0 {
		query += " AND plan_id = ANY(:plan_ids)"
		params["plan_ids"] = filter.PlanIDs
	}

	query += " ORDER BY created_at DESC"
	if filter != nil && !filter.IsUnlimited() {
		query += " LIMIT :limit OFFSET :offset"
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list price components: %w", err)
	}
	defer rows.Close()

	var components []*price.PriceComponent
	for rows.Next() {
		var c price.PriceComponent
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan price component: %w", err)
		}
		components = append(components, &c)
	}
	return components, nil
}

func (r *priceRepository) Count(ctx context.Context, filter *types.PriceFilter) (int, error) {
	query := `SELECT count(*) FROM price_components WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter != nil && len(filter.PlanIDs) > 0 {
		query += " AND plan_id = ANY(:plan_ids)"
		params["plan_ids"] = filter.PlanIDs
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count price components: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan price component count: %w", err)
		}
	}
	return count, nil
}

// Update is restricted to lookup_key and metadata; the Fee itself is immutable
// once a component may have been referenced by a subscription (§4.2).
func (r *priceRepository) Update(ctx context.Context, c *price.PriceComponent) error {
	query := `
		UPDATE price_components SET
			lookup_key = :lookup_key,
			metadata = :metadata,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update price component: %w", err)
	}
	return nil
}

func (r *priceRepository) Delete(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE price_components SET status = :status, updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"tenant_id":  tenantID,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete price component: %w", err)
	}
	return nil
}
