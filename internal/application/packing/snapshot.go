package packing

import (
	"math"
	"time"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// BuildQueueSnapshot aggregates the admin prepack dashboard figures from the
// open queue and the recently packed records (the lead-time window). Pure.
func BuildQueueSnapshot(now time.Time, open []entity.QueueItem, recentPacked []entity.PackedRecord, backlogThreshold int) dto.PrepackQueueDTO {
	part := PartitionByAge(open, now, backlogThreshold)

	queueStuks := SumAmounts(open)
	backlogStuks := SumAmounts(part.Backlog)

	priorityStuks := 0
	for _, it := range open {
		if it.Priority {
			priorityStuks += it.Amount
		}
	}

	backlogPct := 0
	if queueStuks > 0 {
		backlogPct = int(math.Round(float64(backlogStuks) / float64(queueStuks) * 100))
	}

	return dto.PrepackQueueDTO{
		QueueStuks:        queueStuks,
		QueueLines:        len(open),
		BacklogStuks:      backlogStuks,
		BacklogLines:      len(part.Backlog),
		PriorityStuks:     priorityStuks,
		OldestWorkingDays: OldestAgeWorkingDays(open, now),
		AvgLeadTimeDays:   AverageLeadTimeWorkingDays(recentPacked),
		BacklogPct:        backlogPct,
	}
}
