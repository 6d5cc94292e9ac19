package postgres

import (
	"context"
	"fmt"

	"github.com/meteroid-oss/meteroid/internal/domain/invoice"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, tenant_id, customer_id, subscription_id, invoice_type, invoice_status,
			payment_status, currency, amount_due, amount_paid, amount_remaining,
			description, due_date, paid_at, voided_at, finalized_at, invoice_pdf_url,
			billing_reason, metadata, version, status,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :customer_id, :subscription_id, :invoice_type, :invoice_status,
			:payment_status, :currency, :amount_due, :amount_paid, :amount_remaining,
			:description, :due_date, :paid_at, :voided_at, :finalized_at, :invoice_pdf_url,
			:billing_reason, :metadata, :version, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	query := `SELECT * FROM invoices WHERE id = :id AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, invoice.ErrInvoiceNotFound
	}

	var inv invoice.Invoice
	if err := rows.StructScan(&inv); err != nil {
		return nil, fmt.Errorf("failed to scan invoice: %w", err)
	}

	return &inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices SET
			invoice_status = :invoice_status,
			payment_status = :payment_status,
			amount_paid = :amount_paid,
			amount_remaining = :amount_remaining,
			paid_at = :paid_at,
			voided_at = :voided_at,
			finalized_at = :finalized_at,
			invoice_pdf_url = :invoice_pdf_url,
			metadata = :metadata,
			version = :version,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE invoices
		SET status = :status
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":    types.StatusDeleted,
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	query := `SELECT * FROM invoices WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter.CustomerID != "" {
		query += " AND customer_id = :customer_id"
		params["customer_id"] = filter.CustomerID
	}
	if filter.SubscriptionID != "" {
		query += " AND subscription_id = :subscription_id"
		params["subscription_id"] = filter.SubscriptionID
	}
	if len(filter.Status) > 0 {
		query += " AND invoice_status = ANY(:statuses)"
		params["statuses"] = filter.Status
	}
	if filter.StartTime != nil {
		query += " AND created_at >= :start_time"
		params["start_time"] = *filter.StartTime
	}
	if filter.EndTime != nil {
		query += " AND created_at <= :end_time"
		params["end_time"] = *filter.EndTime
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice
	for rows.Next() {
		var inv invoice.Invoice
		if err := rows.StructScan(&inv); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	query := `SELECT count(*) FROM invoices WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter.CustomerID != "" {
		query += " AND customer_id = :customer_id"
		params["customer_id"] = filter.CustomerID
	}
	if filter.SubscriptionID != "" {
		query += " AND subscription_id = :subscription_id"
		params["subscription_id"] = filter.SubscriptionID
	}
	if len(filter.Status) > 0 {
		query += " AND invoice_status = ANY(:statuses)"
		params["statuses"] = filter.Status
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan invoice count: %w", err)
		}
	}
	return count, nil
}

func (r *invoiceRepository) AddLineItems(ctx context.Context, invoiceID string, items []*invoice.InvoiceLineItem) error {
	for _, item := range items {
		item.InvoiceID = invoiceID
		query := `
			INSERT INTO invoice_line_items (
				id, tenant_id, invoice_id, customer_id, subscription_id, price_id, meter_id,
				amount, quantity, currency, period_start, period_end, metadata, status,
				created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :invoice_id, :customer_id, :subscription_id, :price_id, :meter_id,
				:amount, :quantity, :currency, :period_start, :period_end, :metadata, :status,
				:created_at, :updated_at, :created_by, :updated_by
			)
		`
		if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
			return fmt.Errorf("failed to add invoice line item: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepository) RemoveLineItems(ctx context.Context, invoiceID string, itemIDs []string) error {
	query := `
		UPDATE invoice_line_items
		SET status = :status
		WHERE invoice_id = :invoice_id AND id = ANY(:item_ids) AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":     types.StatusDeleted,
		"invoice_id": invoiceID,
		"item_ids":   itemIDs,
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to remove invoice line items: %w", err)
	}
	return nil
}

func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice, items []*invoice.InvoiceLineItem) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		if err := r.Create(ctx, inv); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return r.AddLineItems(ctx, inv.ID, items)
	})
}

func (r *invoiceRepository) ListLineItems(ctx context.Context, invoiceID string) ([]*invoice.InvoiceLineItem, error) {
	query := `SELECT * FROM invoice_line_items WHERE invoice_id = :invoice_id AND tenant_id = :tenant_id ORDER BY created_at ASC`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"invoice_id": invoiceID,
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice line items: %w", err)
	}
	defer rows.Close()

	var items []*invoice.InvoiceLineItem
	for rows.Next() {
		var item invoice.InvoiceLineItem
		if err := rows.StructScan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan invoice line item: %w", err)
		}
		items = append(items, &item)
	}
	return items, nil
}
