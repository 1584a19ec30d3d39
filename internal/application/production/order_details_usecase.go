package production

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

// OrderDetailsUseCase builds the per-order material cost breakdown for every
// production order flagged for time registration.
type OrderDetailsUseCase struct {
	orders repository.ProductionOrderRepository
	prices repository.MaterialPriceRepository
}

func NewOrderDetailsUseCase(orders repository.ProductionOrderRepository, prices repository.MaterialPriceRepository) *OrderDetailsUseCase {
	return &OrderDetailsUseCase{orders: orders, prices: prices}
}

// OrderDetails returns every registered order with line costs, the distinct
// materials used and the order totals.
func (uc *OrderDetailsUseCase) OrderDetails(ctx context.Context) (*dto.OrderDetailsDTO, error) {
	orders, err := uc.orders.ListForTimeRegistration(ctx)
	if err != nil {
		return nil, fmt.Errorf("order details: list orders: %w", err)
	}

	out := &dto.OrderDetailsDTO{Orders: []dto.OrderBreakdownDTO{}}
	for _, order := range orders {
		breakdown, err := uc.orderBreakdown(ctx, order)
		if err != nil {
			return nil, err
		}
		out.Orders = append(out.Orders, *breakdown)
	}
	return out, nil
}

type materialUsage struct {
	description string
	usageCount  int
}

func (uc *OrderDetailsUseCase) orderBreakdown(ctx context.Context, order entity.ProductionOrder) (*dto.OrderBreakdownDTO, error) {
	lines, err := uc.orders.ListLines(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("order details: list lines of order %d: %w", order.ID, err)
	}

	usage := map[string]*materialUsage{}
	itemNumbers := []string{}
	for _, line := range lines {
		for _, comp := range line.Components {
			key := NormalizeItemNumber(comp.ItemNo)
			if key == "" {
				continue
			}
			if u, ok := usage[key]; ok {
				u.usageCount++
				continue
			}
			usage[key] = &materialUsage{description: comp.Description, usageCount: 1}
			itemNumbers = append(itemNumbers, key)
		}
	}

	priceMap := map[string]decimal.Decimal{}
	unitMap := map[string]string{}
	if len(itemNumbers) > 0 {
		materials, err := uc.prices.ListByItemNumbers(ctx, itemNumbers)
		if err != nil {
			return nil, fmt.Errorf("order details: list material prices: %w", err)
		}
		for _, m := range materials {
			key := NormalizeItemNumber(m.ItemNumber)
			priceMap[key] = m.Price
			if m.UnitOfMeasure != "" {
				unitMap[key] = m.UnitOfMeasure
			}
			// The price table carries the canonical material description.
			if u, ok := usage[key]; ok && m.Description != "" {
				u.description = m.Description
			}
		}
	}

	cost := RollupOrderCost(lines, priceMap, unitMap)

	lineDTOs := make([]dto.LineCostDTO, 0, len(cost.Lines))
	for _, lc := range cost.Lines {
		lineDTOs = append(lineDTOs, dto.LineCostDTO{
			LineNo:         lc.Line.LineNo,
			ItemNumber:     lc.Line.ItemNumber,
			Description:    lc.Line.Description,
			Quantity:       lc.Line.Quantity,
			SalesPrice:     lc.Line.SalesPrice,
			ComponentCount: len(lc.Line.Components),
			CostPerItem:    lc.CostPerItem,
			TotalCost:      lc.TotalCost,
			MissingPrice:   lc.MissingPrice,
		})
	}

	materials := make([]dto.MaterialUsageDTO, 0, len(usage))
	for _, key := range itemNumbers {
		u := usage[key]
		m := dto.MaterialUsageDTO{
			ItemNumber:    key,
			Description:   u.description,
			UsageCount:    u.usageCount,
			UnitOfMeasure: entity.UnitStuks,
		}
		if price, ok := priceMap[key]; ok {
			m.Price = decimal.NewNullDecimal(price)
		}
		if unit, ok := unitMap[key]; ok {
			m.UnitOfMeasure = unit
		}
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].ItemNumber < materials[j].ItemNumber })

	return &dto.OrderBreakdownDTO{
		Order: dto.OrderSummaryDTO{
			ID:               order.ID,
			OrderNumber:      order.OrderNumber,
			SalesOrderNumber: order.SalesOrderNumber,
			UploadedAt:       order.UploadedAt,
		},
		Lines:     lineDTOs,
		Materials: materials,
		Totals: dto.CostTotalsDTO{
			LineCount:         cost.Totals.LineCount,
			ComponentCount:    cost.Totals.ComponentCount,
			TotalMaterialCost: cost.Totals.TotalMaterialCost,
			MissingPriceCount: cost.Totals.MissingPriceCount,
		},
	}, nil
}
