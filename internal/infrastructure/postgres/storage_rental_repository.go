package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var _ repository.StorageRentalRepository = (*StorageRentalRepo)(nil)

// StorageRentalRepo reads opslag-verhuur rental items.
type StorageRentalRepo struct {
	pool *pgxpool.Pool
}

func NewStorageRentalRepository(pool *pgxpool.Pool) *StorageRentalRepo {
	return &StorageRentalRepo{pool: pool}
}

func (r *StorageRentalRepo) ListAll(ctx context.Context) ([]entity.StorageRentalItem, error) {
	query := `
		SELECT id, customer_id, COALESCE(description, ''), start_date, end_date,
		       COALESCE(price_per_m2, 0), COALESCE(packing_status, 'bare'),
		       m2, m2_bare, m2_verpakt, packed_at
		FROM storage_rental_items`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list storage rental items: %w", err)
	}
	defer rows.Close()

	var items []entity.StorageRentalItem
	for rows.Next() {
		var it entity.StorageRentalItem
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.Description, &it.StartDate, &it.EndDate,
			&it.PricePerM2, &it.PackingStatus, &it.M2, &it.M2Bare, &it.M2Verpakt, &it.PackedAt); err != nil {
			return nil, fmt.Errorf("scan storage rental item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
