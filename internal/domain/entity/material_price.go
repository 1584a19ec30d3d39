package entity

import "github.com/shopspring/decimal"

// Units of measure for material prices.
const (
	UnitStuks = "stuks"
	UnitM2    = "m2"
	UnitM3    = "m3"
)

// MaterialPrice price of a raw material, keyed by item number and joined to
// order components by component_item_no.
type MaterialPrice struct {
	ItemNumber    string
	Description   string
	Price         decimal.Decimal
	UnitOfMeasure string // stuks | m2 | m3
}
