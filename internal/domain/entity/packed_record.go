package entity

import "time"

// PackedRecord is a completed packing line. Immutable once created; used only
// for historical aggregation (lead time, daily stats, cumulative throughput).
type PackedRecord struct {
	ID         int64
	ItemNumber string
	Kistnummer string // box/crate grouping key for the ERP export; opaque
	Amount     int
	DateAdded  time.Time // zero when intake date was never recorded
	DatePacked time.Time
}
