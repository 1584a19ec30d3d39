package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

// DashboardUseCase aggregates the opslag-verhuur dashboard figures.
type DashboardUseCase struct {
	rentals repository.StorageRentalRepository
}

func NewDashboardUseCase(rentals repository.StorageRentalRepository) *DashboardUseCase {
	return &DashboardUseCase{rentals: rentals}
}

// Summary totals the rental portfolio as of today. An item counts as active
// while it has no end date or its end date has not passed; only active items
// contribute to the area and revenue totals.
func (uc *DashboardUseCase) Summary(ctx context.Context, today time.Time) (*dto.StorageDashboardDTO, error) {
	items, err := uc.rentals.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage dashboard: list rentals: %w", err)
	}

	out := &dto.StorageDashboardDTO{
		TotalItems:    len(items),
		TotalM2:       decimal.Zero,
		AnnualRevenue: decimal.Zero,
	}

	todayDate := dateOnly(today)
	for _, item := range items {
		if !isActive(item, todayDate) {
			continue
		}
		out.ActiveItems++
		out.TotalM2 = out.TotalM2.Add(EffectiveM2(item))
		out.AnnualRevenue = out.AnnualRevenue.Add(ItemRevenue(item, today))
	}

	out.TotalM2 = out.TotalM2.Round(2)
	out.AnnualRevenue = out.AnnualRevenue.Round(2)
	return out, nil
}

func isActive(item entity.StorageRentalItem, today time.Time) bool {
	return item.EndDate == nil || !dateOnly(*item.EndDate).Before(today)
}
