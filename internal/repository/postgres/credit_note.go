package postgres

import (
	"context"
	"fmt"

	"github.com/meteroid-oss/meteroid/internal/domain/creditnote"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

type creditNoteRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCreditNoteRepository(db *postgres.DB, logger *logger.Logger) creditnote.Repository {
	return &creditNoteRepository{db: db, logger: logger}
}

func (r *creditNoteRepository) Create(ctx context.Context, cn *creditnote.CreditNote) error {
	query := `
		INSERT INTO credit_notes (
			id, tenant_id, environment_id, credit_note_number, invoice_id, customer_id,
			subscription_id, credit_note_status, credit_note_type, refund_status, reason,
			memo, currency, metadata, total_amount, idempotency_key, status,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :environment_id, :credit_note_number, :invoice_id, :customer_id,
			:subscription_id, :credit_note_status, :credit_note_type, :refund_status, :reason,
			:memo, :currency, :metadata, :total_amount, :idempotency_key, :status,
			:created_at, :updated_at, :created_by, :updated_by
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, cn)
	if err != nil {
		return fmt.Errorf("failed to create credit note: %w", err)
	}
	return nil
}

func (r *creditNoteRepository) Get(ctx context.Context, id string) (*creditnote.CreditNote, error) {
	query := `SELECT * FROM credit_notes WHERE id = :id AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get credit note: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("credit note not found: %s", id)
	}

	var cn creditnote.CreditNote
	if err := rows.StructScan(&cn); err != nil {
		return nil, fmt.Errorf("failed to scan credit note: %w", err)
	}

	items, err := r.listLineItems(ctx, cn.ID)
	if err != nil {
		return nil, err
	}
	cn.LineItems = items

	return &cn, nil
}

func (r *creditNoteRepository) GetByIdempotencyKey(ctx context.Context, key string) (*creditnote.CreditNote, error) {
	query := `SELECT * FROM credit_notes WHERE idempotency_key = :idempotency_key AND tenant_id = :tenant_id`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"idempotency_key": key,
		"tenant_id":       types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get credit note by idempotency key: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("credit note not found for idempotency key: %s", key)
	}

	var cn creditnote.CreditNote
	if err := rows.StructScan(&cn); err != nil {
		return nil, fmt.Errorf("failed to scan credit note: %w", err)
	}
	return &cn, nil
}

func (r *creditNoteRepository) Update(ctx context.Context, cn *creditnote.CreditNote) error {
	query := `
		UPDATE credit_notes SET
			credit_note_status = :credit_note_status,
			refund_status = :refund_status,
			memo = :memo,
			metadata = :metadata,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, cn)
	if err != nil {
		return fmt.Errorf("failed to update credit note: %w", err)
	}
	return nil
}

func (r *creditNoteRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE credit_notes
		SET status = :status
		WHERE id = :id AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":    types.StatusDeleted,
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to delete credit note: %w", err)
	}
	return nil
}

func (r *creditNoteRepository) List(ctx context.Context, filter *types.CreditNoteFilter) ([]*creditnote.CreditNote, error) {
	query := `SELECT * FROM credit_notes WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter.CustomerID != "" {
		query += " AND customer_id = :customer_id"
		params["customer_id"] = filter.CustomerID
	}
	if filter.InvoiceID != "" {
		query += " AND invoice_id = :invoice_id"
		params["invoice_id"] = filter.InvoiceID
	}
	if filter.SubscriptionID != "" {
		query += " AND subscription_id = :subscription_id"
		params["subscription_id"] = filter.SubscriptionID
	}
	if filter.CreditNoteType != nil {
		query += " AND credit_note_type = :credit_note_type"
		params["credit_note_type"] = *filter.CreditNoteType
	}

	query += " ORDER BY created_at DESC"
	if !filter.IsUnlimited() {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.GetLimit(), filter.GetOffset())
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit notes: %w", err)
	}
	defer rows.Close()

	var notes []*creditnote.CreditNote
	for rows.Next() {
		var cn creditnote.CreditNote
		if err := rows.StructScan(&cn); err != nil {
			return nil, fmt.Errorf("failed to scan credit note: %w", err)
		}
		notes = append(notes, &cn)
	}
	return notes, nil
}

func (r *creditNoteRepository) Count(ctx context.Context, filter *types.CreditNoteFilter) (int, error) {
	query := `SELECT count(*) FROM credit_notes WHERE tenant_id = :tenant_id`
	params := map[string]interface{}{"tenant_id": types.GetTenantID(ctx)}

	if filter.CustomerID != "" {
		query += " AND customer_id = :customer_id"
		params["customer_id"] = filter.CustomerID
	}
	if filter.InvoiceID != "" {
		query += " AND invoice_id = :invoice_id"
		params["invoice_id"] = filter.InvoiceID
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to count credit notes: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("failed to scan credit note count: %w", err)
		}
	}
	return count, nil
}

func (r *creditNoteRepository) AddLineItems(ctx context.Context, creditNoteID string, items []*creditnote.CreditNoteLineItem) error {
	for _, item := range items {
		item.CreditNoteID = creditNoteID
		query := `
			INSERT INTO credit_note_line_items (
				id, tenant_id, environment_id, credit_note_id, invoice_line_item_id,
				display_name, amount, quantity, currency, metadata, status,
				created_at, updated_at, created_by, updated_by
			) VALUES (
				:id, :tenant_id, :environment_id, :credit_note_id, :invoice_line_item_id,
				:display_name, :amount, :quantity, :currency, :metadata, :status,
				:created_at, :updated_at, :created_by, :updated_by
			)
		`
		if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
			return fmt.Errorf("failed to add credit note line item: %w", err)
		}
	}
	return nil
}

func (r *creditNoteRepository) RemoveLineItems(ctx context.Context, creditNoteID string, itemIDs []string) error {
	query := `
		UPDATE credit_note_line_items
		SET status = :status
		WHERE credit_note_id = :credit_note_id AND id = ANY(:item_ids) AND tenant_id = :tenant_id
	`
	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"status":         types.StatusDeleted,
		"credit_note_id": creditNoteID,
		"item_ids":       itemIDs,
		"tenant_id":      types.GetTenantID(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to remove credit note line items: %w", err)
	}
	return nil
}

func (r *creditNoteRepository) CreateWithLineItems(ctx context.Context, cn *creditnote.CreditNote) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		if err := r.Create(ctx, cn); err != nil {
			return err
		}
		if len(cn.LineItems) == 0 {
			return nil
		}
		return r.AddLineItems(ctx, cn.ID, cn.LineItems)
	})
}

func (r *creditNoteRepository) listLineItems(ctx context.Context, creditNoteID string) ([]*creditnote.CreditNoteLineItem, error) {
	query := `SELECT * FROM credit_note_line_items WHERE credit_note_id = :credit_note_id AND tenant_id = :tenant_id ORDER BY created_at ASC`
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"credit_note_id": creditNoteID,
		"tenant_id":      types.GetTenantID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list credit note line items: %w", err)
	}
	defer rows.Close()

	var items []*creditnote.CreditNoteLineItem
	for rows.Next() {
		var item creditnote.CreditNoteLineItem
		if err := rows.StructScan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan credit note line item: %w", err)
		}
		items = append(items, &item)
	}
	return items, nil
}
