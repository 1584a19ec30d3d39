package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Packing states of a storage rental item.
const (
	PackingBare    = "bare"
	PackingVerpakt = "verpakt"
)

// StorageRentalItem an item stored for a customer under the opslag-verhuur
// module. When PackingStatus is verpakt and PackedAt is set, the billable
// area switches from M2Bare to M2Verpakt on the day of packing.
type StorageRentalItem struct {
	ID            int64
	CustomerID    int64
	Description   string
	StartDate     *time.Time
	EndDate       *time.Time
	PricePerM2    decimal.Decimal // annual price per m²
	PackingStatus string          // bare | verpakt
	M2            decimal.NullDecimal
	M2Bare        decimal.NullDecimal
	M2Verpakt     decimal.NullDecimal
	PackedAt      *time.Time
}
