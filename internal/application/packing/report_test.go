package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

func TestBuildDailyReport_Prepack(t *testing.T) {
	day := date(2024, 6, 10) // Monday

	open := []entity.QueueItem{
		{Amount: 10, DateAdded: date(2024, 6, 3)},                 // backlog (5 wd)
		{Amount: 5, DateAdded: date(2024, 6, 7)},                  // current
		{Amount: 2, DateAdded: date(2024, 6, 10), Priority: true}, // current, priority
	}
	packedToday := []entity.PackedRecord{
		{Amount: 4, DatePacked: day},
	}

	r := BuildDailyReport(day, open, packedToday, nil, VariantPrepack, 3)

	assert.Equal(t, "2024-06-10", r.Date)
	assert.Equal(t, 17, r.TotalQuantity) // open queue only
	assert.Equal(t, 10, r.BacklogQuantity)
	assert.Equal(t, 2, r.PriorityQuantity)
	assert.Equal(t, 4, r.PackedQuantity)
}

func TestBuildDailyReport_AirtecTotalsIncludePackedHistory(t *testing.T) {
	day := date(2024, 6, 10)

	open := []entity.QueueItem{{Amount: 5, DateAdded: day}}
	packedToday := []entity.PackedRecord{{Amount: 2, DatePacked: day}}
	packedUpTo := []entity.PackedRecord{
		{Amount: 2, DatePacked: day},
		{Amount: 30, DatePacked: date(2024, 5, 1)},
	}

	r := BuildDailyReport(day, open, packedToday, packedUpTo, VariantAirtec, 3)

	assert.Equal(t, 37, r.TotalQuantity) // 5 open + 32 ever packed
	assert.Equal(t, 2, r.PackedQuantity)
}

func TestBuildDailyReport_Recommendations(t *testing.T) {
	day := date(2024, 6, 10)

	t.Run("high backlog and priority", func(t *testing.T) {
		open := []entity.QueueItem{
			{Amount: 40, DateAdded: date(2024, 6, 3)},                // backlog: 40 of 100
			{Amount: 60, DateAdded: date(2024, 6, 7), Priority: true}, // current
		}

		r := BuildDailyReport(day, open, nil, nil, VariantPrepack, 3)

		assert.Equal(t, []string{
			"Backlog is high (>30%). Consider additional capacity.",
			"60 priority items require immediate attention.",
		}, r.Recommendations)
	})

	t.Run("no backlog", func(t *testing.T) {
		open := []entity.QueueItem{{Amount: 10, DateAdded: day}}

		r := BuildDailyReport(day, open, nil, nil, VariantPrepack, 3)

		assert.Equal(t, []string{"Excellent! No backlog in packing."}, r.Recommendations)
	})

	t.Run("empty queue counts as no backlog", func(t *testing.T) {
		r := BuildDailyReport(day, nil, nil, nil, VariantPrepack, 3)

		assert.Equal(t, 0, r.TotalQuantity)
		assert.Equal(t, []string{"Excellent! No backlog in packing."}, r.Recommendations)
	})

	t.Run("backlog at exactly 30 percent is on track", func(t *testing.T) {
		open := []entity.QueueItem{
			{Amount: 3, DateAdded: date(2024, 6, 3)}, // backlog
			{Amount: 7, DateAdded: date(2024, 6, 7)}, // current
		}

		r := BuildDailyReport(day, open, nil, nil, VariantPrepack, 3)

		assert.Equal(t, []string{"Packing is proceeding according to plan."}, r.Recommendations)
	})
}

func TestBuildDailyReport_BacklogAgedAgainstReportDate(t *testing.T) {
	// The same queue flips from current to backlog when the report date moves.
	open := []entity.QueueItem{{Amount: 5, DateAdded: date(2024, 6, 5)}}

	early := BuildDailyReport(date(2024, 6, 7), open, nil, nil, VariantPrepack, 3)
	late := BuildDailyReport(date(2024, 6, 12), open, nil, nil, VariantPrepack, 3)

	assert.Equal(t, 0, early.BacklogQuantity)
	assert.Equal(t, 5, late.BacklogQuantity)
}
