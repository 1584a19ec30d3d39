package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var (
	_ repository.PackQueueRepository = (*PrepackQueueRepo)(nil)
	_ repository.PackQueueRepository = (*AirtecQueueRepo)(nil)
)

// PrepackQueueRepo reads the plain prepack queue (items_to_pack).
type PrepackQueueRepo struct {
	pool *pgxpool.Pool
}

func NewPrepackQueueRepository(pool *pgxpool.Pool) *PrepackQueueRepo {
	return &PrepackQueueRepo{pool: pool}
}

func (r *PrepackQueueRepo) ListOpen(ctx context.Context) ([]entity.QueueItem, error) {
	query := `
		SELECT id, item_number, amount, priority, date_added
		FROM items_to_pack
		WHERE packed = false`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list open queue items: %w", err)
	}
	return scanQueueItems(rows)
}

func (r *PrepackQueueRepo) ListOpenAddedUpTo(ctx context.Context, upTo time.Time) ([]entity.QueueItem, error) {
	query := `
		SELECT id, item_number, amount, priority, date_added
		FROM items_to_pack
		WHERE packed = false AND date_added <= $1`
	rows, err := r.pool.Query(ctx, query, upTo)
	if err != nil {
		return nil, fmt.Errorf("list queue items up to %s: %w", upTo.Format("2006-01-02"), err)
	}
	return scanQueueItems(rows)
}

// AirtecQueueRepo reads the Airtec queue. The table predates the prepack one
// and uses Dutch column names (aantal via quantity, datum_ontvangen).
type AirtecQueueRepo struct {
	pool *pgxpool.Pool
}

func NewAirtecQueueRepository(pool *pgxpool.Pool) *AirtecQueueRepo {
	return &AirtecQueueRepo{pool: pool}
}

func (r *AirtecQueueRepo) ListOpen(ctx context.Context) ([]entity.QueueItem, error) {
	query := `
		SELECT id, item_number, quantity, priority, datum_ontvangen
		FROM items_to_pack_airtec
		WHERE packed = false`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list open airtec queue items: %w", err)
	}
	return scanQueueItems(rows)
}

func (r *AirtecQueueRepo) ListOpenAddedUpTo(ctx context.Context, upTo time.Time) ([]entity.QueueItem, error) {
	query := `
		SELECT id, item_number, quantity, priority, datum_ontvangen
		FROM items_to_pack_airtec
		WHERE packed = false AND datum_ontvangen <= $1`
	rows, err := r.pool.Query(ctx, query, upTo)
	if err != nil {
		return nil, fmt.Errorf("list airtec queue items up to %s: %w", upTo.Format("2006-01-02"), err)
	}
	return scanQueueItems(rows)
}

func scanQueueItems(rows pgx.Rows) ([]entity.QueueItem, error) {
	defer rows.Close()
	var items []entity.QueueItem
	for rows.Next() {
		var it entity.QueueItem
		if err := rows.Scan(&it.ID, &it.ItemNumber, &it.Amount, &it.Priority, &it.DateAdded); err != nil {
			return nil, fmt.Errorf("scan queue item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
