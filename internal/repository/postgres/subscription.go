package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meteroid-oss/meteroid/internal/domain/subscription"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type subscriptionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return &subscriptionRepository{db: db, logger: logger}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, tenant_id, customer_id, plan_version_id, currency,
			billing_start_date, billing_end_date, billing_day_anchor, billing_period,
			net_terms, activation_condition, subscription_status, trial_end,
			current_period_start, current_period_end, mrr_cents,
			activated_at, canceled_at, version, metadata, status,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :customer_id, :plan_version_id, :currency,
			:billing_start_date, :billing_end_date, :billing_day_anchor, :billing_period,
			:net_terms, :activation_condition, :subscription_status, :trial_end,
			:current_period_start, :current_period_end, :mrr_cents,
			:activated_at, :canceled_at, :version, :metadata, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	query := `SELECT * FROM subscriptions WHERE id = :id AND tenant_id = :tenant_id`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("subscription not found: %s", id)
	}

	var sub subscription.Subscription
	if err := rows.StructScan(&sub); err != nil {
		return nil, fmt.Errorf("failed to scan subscription: %w", err)
	}

	return &sub, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		UPDATE subscriptions SET
			plan_version_id = :plan_version_id,
			billing_end_date = :billing_end_date,
			subscription_status = :subscription_status,
			trial_end = :trial_end,
			current_period_start = :current_period_start,
			current_period_end = :current_period_end,
			mrr_cents = :mrr_cents,
			activated_at = :activated_at,
			canceled_at = :canceled_at,
			version = :version,
			metadata = :metadata,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`

	_, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE subscriptions
		SET status = :status, updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
		"id":         id,
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	query := `SELECT * FROM subscriptions WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	}

	if filter.CustomerID != "" {
		query += " AND customer_id = :customer_id"
		params["customer_id"] = filter.CustomerID
	}
	if filter.PlanID != "" {
		query += " AND plan_version_id = :plan_version_id"
		params["plan_version_id"] = filter.PlanID
	}
	if len(filter.SubscriptionStatus) > 0 {
		query += " AND subscription_status = ANY(:subscription_status)"
		statuses := make([]string, len(filter.SubscriptionStatus))
		for i, s := range filter.SubscriptionStatus {
			statuses[i] = string(s)
		}
		params["subscription_status"] = statuses
	}

	query += " ORDER BY created_at DESC"
	if !filter.IsUnlimited() {
		query += " LIMIT :limit OFFSET :offset"
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subscriptions []*subscription.Subscription
	for rows.Next() {
		var sub subscription.Subscription
		if err := rows.StructScan(&sub); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subscriptions = append(subscriptions, &sub)
	}

	return subscriptions, nil
}
