package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionOrder header of an uploaded production order (Business Central export).
type ProductionOrder struct {
	ID               int64
	OrderNumber      string
	SalesOrderNumber string
	UploadedAt       time.Time
}

// ProductionOrderLine one produced item within an order. Owns zero or more
// components (the bill of material for that line).
type ProductionOrderLine struct {
	ID          int64
	OrderID     int64
	LineNo      int
	ItemNumber  string
	Description string
	Quantity    decimal.Decimal
	SalesPrice  decimal.NullDecimal
	Components  []OrderComponent
}

// OrderComponent a material consumed by a production order line.
// Dimensions are in millimeters; Unit is the consumed quantity in the
// component's unit of measure.
type OrderComponent struct {
	ID          int64
	ItemNo      string
	Description string
	Unit        decimal.Decimal
	LengthMM    decimal.Decimal
	WidthMM     decimal.Decimal
	ThicknessMM decimal.Decimal
}
