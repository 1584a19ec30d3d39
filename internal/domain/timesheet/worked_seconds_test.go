package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pakwerk/magazijn-api/internal/domain/timesheet"
)

func at(h, m int) time.Time {
	return time.Date(2024, time.June, 10, h, m, 0, 0, time.UTC)
}

func TestWorkedSeconds_MorningShiftOutsideBreak(t *testing.T) {
	// 08:00–10:00, no break overlap.
	assert.Equal(t, int64(2*3600), timesheet.WorkedSeconds(at(8, 0), at(10, 0)))
}

func TestWorkedSeconds_BreakFullyDeducted(t *testing.T) {
	// 08:00–12:00 spans the whole 11:00–11:30 break: 4h minus 30m.
	assert.Equal(t, int64(3*3600+1800), timesheet.WorkedSeconds(at(8, 0), at(12, 0)))
}

func TestWorkedSeconds_PartialBreakOverlap(t *testing.T) {
	// 11:15–12:00 overlaps the break by 15 minutes.
	assert.Equal(t, int64(30*60), timesheet.WorkedSeconds(at(11, 15), at(12, 0)))
}

func TestWorkedSeconds_EntirelyInsideBreakIsZero(t *testing.T) {
	assert.Equal(t, int64(0), timesheet.WorkedSeconds(at(11, 5), at(11, 25)))
}

func TestWorkedSeconds_EndBeforeStartIsZero(t *testing.T) {
	assert.Equal(t, int64(0), timesheet.WorkedSeconds(at(14, 0), at(13, 0)))
	assert.Equal(t, int64(0), timesheet.WorkedSeconds(at(14, 0), at(14, 0)))
}

func TestWorkedSeconds_SpansMidnightDeductsBreakPerDay(t *testing.T) {
	// Monday 10:00 to Tuesday 12:00: 26h wall clock minus two 30m breaks.
	start := at(10, 0)
	end := start.AddDate(0, 0, 1).Add(2 * time.Hour)
	assert.Equal(t, int64(26*3600-2*1800), timesheet.WorkedSeconds(start, end))
}

func TestWorkedHours(t *testing.T) {
	assert.InDelta(t, 3.5, timesheet.WorkedHours(at(8, 0), at(12, 0)), 1e-9)
}
