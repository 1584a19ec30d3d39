package dto

import "github.com/shopspring/decimal"

// StorageDashboardDTO response of GET /api/storage-rentals/dashboard.
// AnnualRevenue is the day-prorated yearly revenue over all rental items.
type StorageDashboardDTO struct {
	TotalItems    int             `json:"total_items"`
	ActiveItems   int             `json:"active_items"`
	TotalM2       decimal.Decimal `json:"total_m2"`
	AnnualRevenue decimal.Decimal `json:"annual_revenue"`
}
