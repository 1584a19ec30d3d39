package packing

import (
	"math"
	"time"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/workdays"
)

// Partition splits a queue into backlog and current items.
type Partition struct {
	Backlog []entity.QueueItem
	Current []entity.QueueItem
}

// PartitionByAge splits items on their age in working days relative to
// reference. An item is backlog when it has waited MORE than
// thresholdWorkingDays working days; an item exactly at the threshold is
// still current.
func PartitionByAge(items []entity.QueueItem, reference time.Time, thresholdWorkingDays int) Partition {
	var p Partition
	for _, it := range items {
		if workdays.IsOlderThan(it.DateAdded, reference, thresholdWorkingDays) {
			p.Backlog = append(p.Backlog, it)
		} else {
			p.Current = append(p.Current, it)
		}
	}
	return p
}

// OldestAgeWorkingDays returns the age in working days of the oldest item,
// or 0 for an empty queue.
func OldestAgeWorkingDays(items []entity.QueueItem, reference time.Time) int {
	oldest := 0
	for _, it := range items {
		if age := workdays.Between(it.DateAdded, reference); age > oldest {
			oldest = age
		}
	}
	return oldest
}

// AverageLeadTimeWorkingDays averages the intake-to-packed lead time of the
// given records in working days, rounded to one decimal. Records without a
// known intake date are skipped. Returns nil when no record is usable.
func AverageLeadTimeWorkingDays(records []entity.PackedRecord) *float64 {
	sum, n := 0, 0
	for _, r := range records {
		if r.DateAdded.IsZero() {
			continue
		}
		sum += workdays.Between(r.DateAdded, r.DatePacked)
		n++
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(n)*10) / 10
	return &avg
}

// SumAmounts totals the stuks over a set of queue items.
func SumAmounts(items []entity.QueueItem) int {
	total := 0
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// SumPackedAmounts totals the stuks over a set of packed records.
func SumPackedAmounts(records []entity.PackedRecord) int {
	total := 0
	for _, r := range records {
		total += r.Amount
	}
	return total
}
