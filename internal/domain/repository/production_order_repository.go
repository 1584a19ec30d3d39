package repository

import (
	"context"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// ProductionOrderRepository reads uploaded production orders and their lines.
type ProductionOrderRepository interface {
	// ListForTimeRegistration returns the orders flagged for time
	// registration, newest upload first.
	ListForTimeRegistration(ctx context.Context) ([]entity.ProductionOrder, error)

	// ListLines returns the lines of one order, components included, ordered
	// by line number.
	ListLines(ctx context.Context, orderID int64) ([]entity.ProductionOrderLine, error)
}

// MaterialPriceRepository looks up raw-material prices.
type MaterialPriceRepository interface {
	// ListByItemNumbers returns the prices for the given item numbers.
	// Missing numbers are simply absent from the result.
	ListByItemNumbers(ctx context.Context, itemNumbers []string) ([]entity.MaterialPrice, error)
}
