package postgres

import (
	"context"
	"fmt"

	"github.com/meteroid-oss/meteroid/internal/domain/payment"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type paymentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return &paymentRepository{db: db, logger: logger}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (
			id, tenant_id, environment_id, idempotency_key, destination_type, destination_id,
			payment_method_type, payment_method_id, payment_gateway, gateway_payment_id,
			gateway_tracking_id, gateway_metadata, amount, currency, payment_status,
			track_attempts, metadata, succeeded_at, failed_at, refunded_at, recorded_at,
			error_message, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :environment_id, :idempotency_key, :destination_type, :destination_id,
			:payment_method_type, :payment_method_id, :payment_gateway, :gateway_payment_id,
			:gateway_tracking_id, :gateway_metadata, :amount, :currency, :payment_status,
			:track_attempts, :metadata, :succeeded_at, :failed_at, :refunded_at, :recorded_at,
			:error_message, :status, :created_at, :updated_at, :created_by, :updated_by
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	query := `SELECT * FROM payments WHERE id = :id AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("payment not found: %s", id)
	}

	var p payment.Payment
	if err := rows.StructScan(&p); err != nil {
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return &p, nil
}

func (r *paymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*payment.Payment, error) {
	query := `SELECT * FROM payments WHERE idempotency_key = :idempotency_key AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"idempotency_key": key,
		"tenant_id":       types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by idempotency key: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("payment not found for idempotency key: %s", key)
	}

	var p payment.Payment
	if err := rows.StructScan(&p); err != nil {
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return &p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments SET
			payment_status = :payment_status,
			payment_gateway = :payment_gateway,
			gateway_payment_id = :gateway_payment_id,
			gateway_tracking_id = :gateway_tracking_id,
			gateway_metadata = :gateway_metadata,
			metadata = :metadata,
			succeeded_at = :succeeded_at,
			failed_at = :failed_at,
			refunded_at = :refunded_at,
			recorded_at = :recorded_at,
			error_message = :error_message,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE payments
		SET status = :status
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":    types.StatusDeleted,
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	query := `SELECT * FROM payments WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if len(filter.PaymentIDs) > 0 {
		query += " AND id = ANY(:payment_ids)"
		params["payment_ids"] = filter.PaymentIDs
	}
	if filter.DestinationID != nil {
		query += " AND destination_id = :destination_id"
		params["destination_id"] = *filter.DestinationID
	}
	if filter.PaymentStatus != nil {
		query += " AND payment_status = :payment_status"
		params["payment_status"] = *filter.PaymentStatus
	}
	if filter.Currency != nil {
		query += " AND currency = :currency"
		params["currency"] = *filter.Currency
	}

	query += " ORDER BY created_at DESC"
	if !filter.IsUnlimited() {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.GetLimit(), filter.GetOffset())
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.StructScan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &p)
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	query := `SELECT count(*) FROM payments WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter.DestinationID != nil {
		query += " AND destination_id = :destination_id"
		params["destination_id"] = *filter.DestinationID
	}
	if filter.PaymentStatus != nil {
		query += " AND payment_status = :payment_status"
		params["payment_status"] = *filter.PaymentStatus
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan payment count: %w", err)
		}
	}
	return count, nil
}

func (r *paymentRepository) CreateAttempt(ctx context.Context, attempt *payment.PaymentAttempt) error {
	query := `
		INSERT INTO payment_attempts (
			id, tenant_id, environment_id, payment_id, attempt_number, payment_status,
			gateway_attempt_id, error_message, metadata, status,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :environment_id, :payment_id, :attempt_number, :payment_status,
			:gateway_attempt_id, :error_message, :metadata, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, attempt)
	if err != nil {
		return fmt.Errorf("failed to create payment attempt: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetAttempt(ctx context.Context, id string) (*payment.PaymentAttempt, error) {
	query := `SELECT * FROM payment_attempts WHERE id = :id AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment attempt: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("payment attempt not found: %s", id)
	}

	var a payment.PaymentAttempt
	if err := rows.StructScan(&a); err != nil {
		return nil, fmt.Errorf("failed to scan payment attempt: %w", err)
	}
	return &a, nil
}

func (r *paymentRepository) UpdateAttempt(ctx context.Context, attempt *payment.PaymentAttempt) error {
	query := `
		UPDATE payment_attempts SET
			payment_status = :payment_status,
			gateway_attempt_id = :gateway_attempt_id,
			error_message = :error_message,
			metadata = :metadata,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, attempt)
	if err != nil {
		return fmt.Errorf("failed to update payment attempt: %w", err)
	}
	return nil
}

func (r *paymentRepository) ListAttempts(ctx context.Context, paymentID string) ([]*payment.PaymentAttempt, error) {
	query := `SELECT * FROM payment_attempts WHERE payment_id = :payment_id AND tenant_id = :tenant_id ORDER BY attempt_number ASC`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"payment_id": paymentID,
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payment attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*payment.PaymentAttempt
	for rows.Next() {
		var a payment.PaymentAttempt
		if err := rows.StructScan(&a); err != nil {
			return nil, fmt.Errorf("failed to scan payment attempt: %w", err)
		}
		attempts = append(attempts, &a)
	}
	return attempts, nil
}

func (r *paymentRepository) GetLatestAttempt(ctx context.Context, paymentID string) (*payment.PaymentAttempt, error) {
	query := `
		SELECT * FROM payment_attempts
		WHERE payment_id = :payment_id AND tenant_id = :tenant_id
		ORDER BY attempt_number DESC
		LIMIT 1
	`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"payment_id": paymentID,
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest payment attempt: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("no attempts found for payment: %s", paymentID)
	}

	var a payment.PaymentAttempt
	if err := rows.StructScan(&a); err != nil {
		return nil, fmt.Errorf("failed to scan payment attempt: %w", err)
	}
	return &a, nil
}
