package external

import (
	"context"
	"fmt"
	"time"

	ierr "github.com/meteroid-oss/meteroid/internal/errors"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/lib/pq"
)

// UsageRecord is a single raw usage event as the Compute Engine consumes it
// when building a usage-based line item.
type UsageRecord struct {
	ID         string
	CustomerID string
	EventName  string
	Timestamp  time.Time
	Properties map[string]interface{}
}

// UsageQuery scopes a usage lookup to one customer's billing period for one
// metered event.
type UsageQuery struct {
	CustomerID string
	EventName  string
	PeriodFrom time.Time
	PeriodTo   time.Time
}

// UsageClient is the narrow boundary the Compute Engine (§4.1-4.2) uses to
// read metered usage. Realtime ingestion/aggregation is delegated to a
// dedicated metering service; this client only reads what has already
// landed in the events table.
type UsageClient interface {
	Query(ctx context.Context, q UsageQuery) ([]UsageRecord, error)
	Count(ctx context.Context, q UsageQuery) (int64, error)
	Sum(ctx context.Context, q UsageQuery, property string) (float64, error)
}

type postgresUsageClient struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewPostgresUsageClient backs the UsageClient with the events table already
// populated by the ingestion path, grounded on the repository.postgres
// NamedQueryContext conventions used across internal/repository/postgres.
func NewPostgresUsageClient(db *postgres.DB, logger *logger.Logger) UsageClient {
	return &postgresUsageClient{db: db, logger: logger}
}

func (c *postgresUsageClient) Query(ctx context.Context, q UsageQuery) ([]UsageRecord, error) {
	query := `
		SELECT id, customer_id, event_name, timestamp, properties
		FROM events
		WHERE tenant_id = :tenant_id
			AND customer_id = :customer_id
			AND event_name = :event_name
			AND timestamp >= :period_from
			AND timestamp < :period_to
		ORDER BY timestamp ASC
	`
	rows, err := c.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":   types.GetTenantID(ctx),
		"customer_id": q.CustomerID,
		"event_name":  q.EventName,
		"period_from": q.PeriodFrom,
		"period_to":   q.PeriodTo,
	})
	if err != nil {
		return nil, ierr.Wrap(err, "ErrDatabase", "failed to query usage events")
	}
	defer rows.Close()

	var records []UsageRecord
	for rows.Next() {
		var r struct {
			ID         string                 `db:"id"`
			CustomerID string                 `db:"customer_id"`
			EventName  string                 `db:"event_name"`
			Timestamp  time.Time              `db:"timestamp"`
			Properties map[string]interface{} `db:"properties"`
		}
		if err := rows.StructScan(&r); err != nil {
			return nil, ierr.Wrap(err, "ErrDatabase", "failed to scan usage event")
		}
		records = append(records, UsageRecord{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			EventName:  r.EventName,
			Timestamp:  r.Timestamp,
			Properties: r.Properties,
		})
	}
	return records, nil
}

func (c *postgresUsageClient) Count(ctx context.Context, q UsageQuery) (int64, error) {
	query := `
		SELECT COUNT(*) FROM events
		WHERE tenant_id = :tenant_id
			AND customer_id = :customer_id
			AND event_name = :event_name
			AND timestamp >= :period_from
			AND timestamp < :period_to
	`
	rows, err := c.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":   types.GetTenantID(ctx),
		"customer_id": q.CustomerID,
		"event_name":  q.EventName,
		"period_from": q.PeriodFrom,
		"period_to":   q.PeriodTo,
	})
	if err != nil {
		return 0, ierr.Wrap(err, "ErrDatabase", "failed to count usage events")
	}
	defer rows.Close()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.Wrap(err, "ErrDatabase", "failed to scan usage count")
		}
	}
	return count, nil
}

// Sum aggregates a numeric JSONB property across matching events, used for
// metered fees billed on a property other than event count (e.g. bytes
// transferred, seconds consumed).
func (c *postgresUsageClient) Sum(ctx context.Context, q UsageQuery, property string) (float64, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM((properties->>%s)::numeric), 0) FROM events
		WHERE tenant_id = :tenant_id
			AND customer_id = :customer_id
			AND event_name = :event_name
			AND timestamp >= :period_from
			AND timestamp < :period_to
	`, pq.QuoteLiteral(property))
	rows, err := c.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":   types.GetTenantID(ctx),
		"customer_id": q.CustomerID,
		"event_name":  q.EventName,
		"period_from": q.PeriodFrom,
		"period_to":   q.PeriodTo,
	})
	if err != nil {
		return 0, ierr.Wrap(err, "ErrDatabase", "failed to sum usage property")
	}
	defer rows.Close()

	var sum float64
	if rows.Next() {
		if err := rows.Scan(&sum); err != nil {
			return 0, ierr.Wrap(err, "ErrDatabase", "failed to scan usage sum")
		}
	}
	return sum, nil
}
