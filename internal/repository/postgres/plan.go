package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meteroid-oss/meteroid/internal/domain/plan"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type planRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return &planRepository{db: db, logger: logger}
}

func (r *planRepository) Create(ctx context.Context, p *plan.Plan) error {
	query := `
		INSERT INTO plans (
			id, tenant_id, name, lookup_key, description, invoice_cadence, trial_period,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :name, :lookup_key, :description, :invoice_cadence, :trial_period,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)
	`

	r.logger.Debugw("creating plan", "plan_id", p.ID, "tenant_id", p.TenantID)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}
	return nil
}

func (r *planRepository) Get(ctx context.Context, id string) (*plan.Plan, error) {
	query := `SELECT * FROM plans WHERE id = :id AND tenant_id = :tenant_id`

	var p plan.Plan
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("plan not found: %s", id)
	}
	if err := rows.StructScan(&p); err != nil {
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}
	return &p, nil
}

func (r *planRepository) whereClause(ctx context.Context, filter *types.PlanFilter) (string, map[string]interface{}) {
	query := `WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter != nil {
		if len(filter.PlanIDs) > 0 {
			query += " AND id = ANY(:plan_ids)"
			params["plan_ids"] = filter.PlanIDs
		}
		if filter.LookupKey != "" {
			query += " AND lookup_key = :lookup_key"
			params["lookup_key"] = filter.LookupKey
		}
	}
	return query, params
}

func (r *planRepository) List(ctx context.Context, filter *types.PlanFilter) ([]*plan.Plan, error) {
	where, params := r.whereClause(ctx, filter)
	query := `SELECT * FROM plans ` + where + ` ORDER BY created_at DESC`
	if filter != nil && !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		var p plan.Plan
		if err := rows.StructScan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, &p)
	}
	return plans, nil
}

func (r *planRepository) ListAll(ctx context.Context, filter *types.PlanFilter) ([]*plan.Plan, error) {
	where, params := r.whereClause(ctx, filter)
	query := `SELECT * FROM plans ` + where + ` ORDER BY created_at DESC`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list all plans: %w", err)
	}
	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		var p plan.Plan
		if err := rows.StructScan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, &p)
	}
	return plans, nil
}

func (r *planRepository) Count(ctx context.Context, filter *types.PlanFilter) (int, error) {
	where, params := r.whereClause(ctx, filter)
	query := `SELECT count(*) FROM plans ` + where

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan plan count: %w", err)
		}
	}
	return count, nil
}

func (r *planRepository) Update(ctx context.Context, p *plan.Plan) error {
	query := `
		UPDATE plans SET
			name = :name,
			lookup_key = :lookup_key,
			description = :description,
			invoice_cadence = :invoice_cadence,
			trial_period = :trial_period,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating plan", "plan_id", p.ID, "tenant_id", p.TenantID)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE plans SET status = :status, updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`

	r.logger.Debugw("deleting plan", "plan_id", id)

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
