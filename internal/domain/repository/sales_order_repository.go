package repository

import (
	"context"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// SalesOrderRepository stores the imported sales price list.
type SalesOrderRepository interface {
	// UpsertPrices inserts or updates the given prices in one batch.
	UpsertPrices(ctx context.Context, prices []entity.SalesOrderPrice) error
}
