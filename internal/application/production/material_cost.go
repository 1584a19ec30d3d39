package production

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

var (
	mmPerM2 = decimal.NewFromInt(1_000_000)     // mm² per m²
	mmPerM3 = decimal.NewFromInt(1_000_000_000) // mm³ per m³
)

// NormalizeItemNumber canonicalizes an item number for price lookups. The
// price table and the Business Central export disagree on casing and
// whitespace for some materials.
func NormalizeItemNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ComponentCost values one component against a unit price.
//
//	m3:    (length × width × thickness in mm) / 1e9 × units × price
//	m2:    (length × width in mm) / 1e6 × units × price
//	other: units × price (stuks)
//
// Zero dimensions or a zero unit count simply yield zero cost.
func ComponentCost(c entity.OrderComponent, price decimal.Decimal, unitOfMeasure string) decimal.Decimal {
	switch unitOfMeasure {
	case entity.UnitM3:
		volume := c.LengthMM.Mul(c.WidthMM).Mul(c.ThicknessMM).Div(mmPerM3)
		return volume.Mul(c.Unit).Mul(price)
	case entity.UnitM2:
		area := c.LengthMM.Mul(c.WidthMM).Div(mmPerM2)
		return area.Mul(c.Unit).Mul(price)
	default:
		return c.Unit.Mul(price)
	}
}

// LineCost material cost of one production order line.
type LineCost struct {
	Line         entity.ProductionOrderLine
	CostPerItem  decimal.Decimal
	TotalCost    decimal.Decimal
	MissingPrice bool
}

// CostTotals order-level rollup. MissingPriceCount counts lines with at least
// one unpriced component; ComponentCount counts every component, priced or not.
type CostTotals struct {
	LineCount         int
	ComponentCount    int
	TotalMaterialCost decimal.Decimal
	MissingPriceCount int
}

// OrderCost the full cost breakdown of one order.
type OrderCost struct {
	Lines  []LineCost
	Totals CostTotals
}

// RollupOrderCost computes the material cost per line and the order totals.
// prices and units are keyed by normalized item number; components whose
// material has no price contribute zero cost and mark the line MissingPrice.
func RollupOrderCost(lines []entity.ProductionOrderLine, prices map[string]decimal.Decimal, units map[string]string) OrderCost {
	out := OrderCost{
		Lines:  make([]LineCost, 0, len(lines)),
		Totals: CostTotals{TotalMaterialCost: decimal.Zero},
	}

	for _, line := range lines {
		lc := LineCost{Line: line, CostPerItem: decimal.Zero}

		for _, comp := range line.Components {
			out.Totals.ComponentCount++

			key := NormalizeItemNumber(comp.ItemNo)
			price, ok := prices[key]
			if !ok {
				lc.MissingPrice = true
				continue
			}
			lc.CostPerItem = lc.CostPerItem.Add(ComponentCost(comp, price, units[key]))
		}

		lc.TotalCost = lc.CostPerItem.Mul(line.Quantity)
		out.Totals.TotalMaterialCost = out.Totals.TotalMaterialCost.Add(lc.TotalCost)
		if lc.MissingPrice {
			out.Totals.MissingPriceCount++
		}
		out.Lines = append(out.Lines, lc)
	}

	out.Totals.LineCount = len(lines)
	return out
}
