package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

func TestBuildQueueSnapshot(t *testing.T) {
	now := date(2024, 6, 10) // Monday

	open := []entity.QueueItem{
		{Amount: 10, DateAdded: date(2024, 6, 3)},                // backlog, 5 wd
		{Amount: 5, DateAdded: date(2024, 6, 7), Priority: true}, // current
		{Amount: 5, DateAdded: date(2024, 6, 10)},                // current
	}
	recent := []entity.PackedRecord{
		{DateAdded: date(2024, 6, 3), DatePacked: date(2024, 6, 7)}, // 4 wd
		{DateAdded: date(2024, 6, 5), DatePacked: date(2024, 6, 7)}, // 2 wd
	}

	s := BuildQueueSnapshot(now, open, recent, 3)

	assert.Equal(t, 20, s.QueueStuks)
	assert.Equal(t, 3, s.QueueLines)
	assert.Equal(t, 10, s.BacklogStuks)
	assert.Equal(t, 1, s.BacklogLines)
	assert.Equal(t, 5, s.PriorityStuks)
	assert.Equal(t, 5, s.OldestWorkingDays)
	require.NotNil(t, s.AvgLeadTimeDays)
	assert.InDelta(t, 3.0, *s.AvgLeadTimeDays, 1e-9)
	assert.Equal(t, 50, s.BacklogPct)
}

func TestBuildQueueSnapshot_EmptyQueue(t *testing.T) {
	s := BuildQueueSnapshot(date(2024, 6, 10), nil, nil, 3)

	assert.Equal(t, 0, s.QueueStuks)
	assert.Equal(t, 0, s.BacklogPct) // no division by zero
	assert.Equal(t, 0, s.OldestWorkingDays)
	assert.Nil(t, s.AvgLeadTimeDays)
}

func TestBuildQueueSnapshot_BacklogPctRounds(t *testing.T) {
	open := []entity.QueueItem{
		{Amount: 1, DateAdded: date(2024, 6, 3)}, // backlog
		{Amount: 2, DateAdded: date(2024, 6, 10)},
	}

	s := BuildQueueSnapshot(date(2024, 6, 10), open, nil, 3)

	// 1/3 = 33.33..., rounds to 33
	assert.Equal(t, 33, s.BacklogPct)
}
