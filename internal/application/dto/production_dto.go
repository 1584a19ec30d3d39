package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourTotalDTO one key (order, step, employee or item) with its summed hours.
type HourTotalDTO struct {
	Key   string  `json:"key"`
	Hours float64 `json:"hours"` // rounded to 2 decimals
}

// KPIReportDTO response of GET /api/production-orders/kpi: worked hours per
// production order, per step, per employee and per produced item.
type KPIReportDTO struct {
	Orders    []HourTotalDTO `json:"orders"`
	Steps     []HourTotalDTO `json:"steps"`
	Employees []HourTotalDTO `json:"employees"`
	Items     []HourTotalDTO `json:"items"`
}

// OrderSummaryDTO header of a production order in the details response.
type OrderSummaryDTO struct {
	ID               int64     `json:"id"`
	OrderNumber      string    `json:"order_number"`
	SalesOrderNumber string    `json:"sales_order_number"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// LineCostDTO a production order line with its material cost.
type LineCostDTO struct {
	LineNo         int                 `json:"line_no"`
	ItemNumber     string              `json:"item_number"`
	Description    string              `json:"description"`
	Quantity       decimal.Decimal     `json:"quantity"`
	SalesPrice     decimal.NullDecimal `json:"sales_price"`
	ComponentCount int                 `json:"component_count"`
	CostPerItem    decimal.Decimal     `json:"cost_per_item"`
	TotalCost      decimal.Decimal     `json:"total_cost"`
	MissingPrice   bool                `json:"missing_price"`
}

// MaterialUsageDTO a distinct material used across an order's lines.
// Price is null when the material has no entry in the price table.
type MaterialUsageDTO struct {
	ItemNumber    string              `json:"item_number"`
	Description   string              `json:"description"`
	UsageCount    int                 `json:"usage_count"`
	Price         decimal.NullDecimal `json:"price"`
	UnitOfMeasure string              `json:"unit_of_measure"`
}

// CostTotalsDTO order-level material cost totals. MissingPriceCount counts
// lines with at least one unpriced component, not the components themselves.
type CostTotalsDTO struct {
	LineCount         int             `json:"line_count"`
	ComponentCount    int             `json:"component_count"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
	MissingPriceCount int             `json:"missing_price_count"`
}

// OrderBreakdownDTO one order with its cost breakdown.
type OrderBreakdownDTO struct {
	Order     OrderSummaryDTO    `json:"order"`
	Lines     []LineCostDTO      `json:"lines"`
	Materials []MaterialUsageDTO `json:"materials"`
	Totals    CostTotalsDTO      `json:"totals"`
}

// OrderDetailsDTO response of GET /api/production-orders/order-details.
type OrderDetailsDTO struct {
	Orders []OrderBreakdownDTO `json:"orders"`
}
