package postgres

import (
	"context"
	"fmt"

	"github.com/meteroid-oss/meteroid/internal/domain/subscription"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type subscriptionComponentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSubscriptionComponentRepository(db *postgres.DB, logger *logger.Logger) subscription.ComponentRepository {
	return &subscriptionComponentRepository{db: db, logger: logger}
}

func (r *subscriptionComponentRepository) Create(ctx context.Context, c *subscription.SubscriptionComponent) error {
	query := `
		INSERT INTO subscription_components (
			id, tenant_id, subscription_id, customer_id, price_component_id, is_add_on,
			display_name, currency, billing_period, fee_type,
			rate_fee, recurring_fee, one_time_fee, slot_fee, capacity_fee, usage_fee,
			start_date, end_date, subscription_phase_id, metadata, status,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :subscription_id, :customer_id, :price_component_id, :is_add_on,
			:display_name, :currency, :billing_period, :fee_type,
			:rate_fee, :recurring_fee, :one_time_fee, :slot_fee, :capacity_fee, :usage_fee,
			:start_date, :end_date, :subscription_phase_id, :metadata, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to create subscription component: %w", err)
	}
	return nil
}

func (r *subscriptionComponentRepository) CreateBulk(ctx context.Context, components []*subscription.SubscriptionComponent) error {
	for _, c := range components {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *subscriptionComponentRepository) Get(ctx context.Context, id string) (*subscription.SubscriptionComponent, error) {
	query := `SELECT * FROM subscription_components WHERE id = :id AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription component: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("subscription component not found: %s", id)
	}

	var c subscription.SubscriptionComponent
	if err := rows.StructScan(&c); err != nil {
		return nil, fmt.Errorf("failed to scan subscription component: %w", err)
	}
	return &c, nil
}

func (r *subscriptionComponentRepository) Update(ctx context.Context, c *subscription.SubscriptionComponent) error {
	query := `
		UPDATE subscription_components SET
			end_date = :end_date,
			metadata = :metadata,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update subscription component: %w", err)
	}
	return nil
}

func (r *subscriptionComponentRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE subscription_components
		SET status = :status
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":    types.StatusDeleted,
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete subscription component: %w", err)
	}
	return nil
}

func (r *subscriptionComponentRepository) ListBySubscription(ctx context.Context, sub *subscription.Subscription) ([]*subscription.SubscriptionComponent, error) {
	return r.List(ctx, &types.SubscriptionComponentFilter{SubscriptionIDs: []string{sub.ID}})
}

func (r *subscriptionComponentRepository) List(ctx context.Context, filter *types.SubscriptionComponentFilter) ([]*subscription.SubscriptionComponent, error) {
	query := `SELECT * FROM subscription_components WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if len(filter.SubscriptionIDs) > 0 {
		query += " AND subscription_id = ANY(:subscription_ids)"
		params["subscription_ids"] = filter.SubscriptionIDs
	}
	if len(filter.CustomerIDs) > 0 {
		query += " AND customer_id = ANY(:customer_ids)"
		params["customer_ids"] = filter.CustomerIDs
	}
	if len(filter.PriceComponentIDs) > 0 {
		query += " AND price_component_id = ANY(:price_component_ids)"
		params["price_component_ids"] = filter.PriceComponentIDs
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription components: %w", err)
	}
	defer rows.Close()

	var components []*subscription.SubscriptionComponent
	for rows.Next() {
		var c subscription.SubscriptionComponent
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan subscription component: %w", err)
		}
		components = append(components, &c)
	}
	return components, nil
}
