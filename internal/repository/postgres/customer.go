package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meteroid-oss/meteroid/internal/domain/customer"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type customerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return &customerRepository{db: db, logger: logger}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			id, tenant_id, external_id, name, email, currency, timezone, metadata,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :external_id, :name, :email, :currency, :timezone, :metadata,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating customer", "customer_id", c.ID, "tenant_id", c.TenantID)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer
	rows, err := r.db.NamedQueryContext(ctx, "SELECT * FROM customers WHERE id = :id AND tenant_id = :tenant_id", map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("customer not found: %s", id)
	}

	if err := rows.StructScan(&c); err != nil {
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}

	return &c, nil
}

func (r *customerRepository) whereClause(ctx context.Context, filter *types.CustomerFilter) (string, map[string]interface{}) {
	query := `WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter != nil {
		if len(filter.CustomerIDs) > 0 {
			query += " AND id = ANY(:customer_ids)"
			params["customer_ids"] = filter.CustomerIDs
		}
		if len(filter.ExternalIDs) > 0 {
			query += " AND external_id = ANY(:external_ids)"
			params["external_ids"] = filter.ExternalIDs
		}
		if filter.ExternalID != "" {
			query += " AND external_id = :external_id"
			params["external_id"] = filter.ExternalID
		}
		if filter.Email != "" {
			query += " AND email = :email"
			params["email"] = filter.Email
		}
	}
	return query, params
}

func (r *customerRepository) List(ctx context.Context, filter *types.CustomerFilter) ([]*customer.Customer, error) {
	where, params := r.whereClause(ctx, filter)
	query := `SELECT * FROM customers ` + where + ` ORDER BY created_at DESC`
	if filter != nil && !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, nil
}

func (r *customerRepository) ListAll(ctx context.Context, filter *types.CustomerFilter) ([]*customer.Customer, error) {
	where, params := r.whereClause(ctx, filter)
	query := `SELECT * FROM customers ` + where + ` ORDER BY created_at DESC`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list all customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.StructScan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context, filter *types.CustomerFilter) (int, error) {
	where, params := r.whereClause(ctx, filter)
	query := `SELECT count(*) FROM customers ` + where

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan customer count: %w", err)
		}
	}
	return count, nil
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers SET
			external_id = :external_id,
			name = :name,
			email = :email,
			currency = :currency,
			timezone = :timezone,
			metadata = :metadata,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	r.logger.Debugw("updating customer", "customer_id", c.ID, "tenant_id", c.TenantID)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE customers SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	r.logger.Debugw("deleting customer", "customer_id", id, "tenant_id", types.GetTenantID(ctx))

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusDeleted,
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
