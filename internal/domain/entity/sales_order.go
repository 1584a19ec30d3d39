package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderPrice a sales price imported from the customer's order Excel,
// used to value packed items in the stats reports.
type SalesOrderPrice struct {
	ItemNumber  string
	Description string
	Price       decimal.Decimal
	UploadedAt  time.Time
}
