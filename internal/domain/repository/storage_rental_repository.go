package repository

import (
	"context"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// StorageRentalRepository reads opslag-verhuur rental items.
type StorageRentalRepository interface {
	ListAll(ctx context.Context) ([]entity.StorageRentalItem, error)
}
