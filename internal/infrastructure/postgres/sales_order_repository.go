package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo stores the imported sales price list.
type SalesOrderRepo struct {
	pool *pgxpool.Pool
}

func NewSalesOrderRepository(pool *pgxpool.Pool) *SalesOrderRepo {
	return &SalesOrderRepo{pool: pool}
}

// UpsertPrices writes all prices in one batch; a re-uploaded item number
// overwrites the previous price.
func (r *SalesOrderRepo) UpsertPrices(ctx context.Context, prices []entity.SalesOrderPrice) error {
	if len(prices) == 0 {
		return nil
	}
	query := `
		INSERT INTO sales_order_prices (item_number, description, price, uploaded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_number)
		DO UPDATE SET description = EXCLUDED.description,
		              price = EXCLUDED.price,
		              uploaded_at = EXCLUDED.uploaded_at`

	batch := &pgx.Batch{}
	for _, p := range prices {
		batch.Queue(query, p.ItemNumber, p.Description, p.Price, p.UploadedAt)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range prices {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert sales order price: %w", err)
		}
	}
	return nil
}
