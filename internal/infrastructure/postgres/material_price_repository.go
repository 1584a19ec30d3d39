package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var _ repository.MaterialPriceRepository = (*MaterialPriceRepo)(nil)

// MaterialPriceRepo reads the raw-material price table.
type MaterialPriceRepo struct {
	pool *pgxpool.Pool
}

func NewMaterialPriceRepository(pool *pgxpool.Pool) *MaterialPriceRepo {
	return &MaterialPriceRepo{pool: pool}
}

func (r *MaterialPriceRepo) ListByItemNumbers(ctx context.Context, itemNumbers []string) ([]entity.MaterialPrice, error) {
	if len(itemNumbers) == 0 {
		return nil, nil
	}
	query := `
		SELECT item_number, COALESCE(description, ''), price, COALESCE(unit_of_measure, 'stuks')
		FROM material_prices
		WHERE item_number = ANY($1)`
	rows, err := r.pool.Query(ctx, query, itemNumbers)
	if err != nil {
		return nil, fmt.Errorf("list material prices: %w", err)
	}
	defer rows.Close()

	var prices []entity.MaterialPrice
	for rows.Next() {
		var p entity.MaterialPrice
		if err := rows.Scan(&p.ItemNumber, &p.Description, &p.Price, &p.UnitOfMeasure); err != nil {
			return nil, fmt.Errorf("scan material price: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
