package external

import (
	"context"
	"time"

	ierr "github.com/meteroid-oss/meteroid/internal/errors"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
)

// SlotTransaction records one adjustment to a SLOT-fee component's
// provisioned quantity (a seat added, a seat removed).
type SlotTransaction struct {
	ID                       string
	SubscriptionComponentID  string
	Delta                    int
	Reason                   string
	CreatedAt                time.Time
}

// SlotClient is the narrow boundary the Compute Engine uses to resolve the
// current slot count for a SLOT-fee component at invoicing time, and the
// boundary subscription lifecycle orchestration uses to record adjustments.
type SlotClient interface {
	Adjust(ctx context.Context, componentID string, delta int, reason string) error
	CurrentCount(ctx context.Context, componentID string, asOf time.Time) (int, error)
}

type postgresSlotClient struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPostgresSlotClient(db *postgres.DB, logger *logger.Logger) SlotClient {
	return &postgresSlotClient{db: db, logger: logger}
}

func (c *postgresSlotClient) Adjust(ctx context.Context, componentID string, delta int, reason string) error {
	query := `
		INSERT INTO slot_transactions (id, tenant_id, subscription_component_id, delta, reason, created_at, created_by)
		VALUES (:id, :tenant_id, :subscription_component_id, :delta, :reason, :created_at, :created_by)
	`
	_, err := c.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":                        types.GenerateUUIDWithPrefix("sltx"),
		"tenant_id":                 types.GetTenantID(ctx),
		"subscription_component_id": componentID,
		"delta":                     delta,
		"reason":                    reason,
		"created_at":                time.Now(),
		"created_by":                types.GetUserID(ctx),
	})
	if err != nil {
		return ierr.Wrap(err, "ErrDatabase", "failed to record slot transaction")
	}
	return nil
}

func (c *postgresSlotClient) CurrentCount(ctx context.Context, componentID string, asOf time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(delta), 0) FROM slot_transactions
		WHERE tenant_id = :tenant_id
			AND subscription_component_id = :subscription_component_id
			AND created_at <= :as_of
	`
	rows, err := c.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":                 types.GetTenantID(ctx),
		"subscription_component_id": componentID,
		"as_of":                     asOf,
	})
	if err != nil {
		return 0, ierr.Wrap(err, "ErrDatabase", "failed to compute current slot count")
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.Wrap(err, "ErrDatabase", "failed to scan slot count")
		}
	}
	return count, nil
}
