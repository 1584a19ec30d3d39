package packing

import (
	"context"
	"fmt"
	"time"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
	"github.com/pakwerk/magazijn-api/internal/domain/workdays"
)

// ReportUseCase builds the daily packing report for one queue variant.
// Instantiate once per variant with that variant's repositories.
type ReportUseCase struct {
	queue            repository.PackQueueRepository
	packed           repository.PackedRepository
	variant          Variant
	backlogThreshold int
}

func NewReportUseCase(queue repository.PackQueueRepository, packed repository.PackedRepository, variant Variant, backlogThreshold int) *ReportUseCase {
	return &ReportUseCase{
		queue:            queue,
		packed:           packed,
		variant:          variant,
		backlogThreshold: backlogThreshold,
	}
}

// DailyReport builds the report for the given date (any instant on that day).
func (uc *ReportUseCase) DailyReport(ctx context.Context, date time.Time) (*dto.DailyReportDTO, error) {
	dayStart := workdays.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

	open, err := uc.queue.ListOpenAddedUpTo(ctx, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("daily report: list open queue: %w", err)
	}

	packedForDate, err := uc.packed.ListPackedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("daily report: list packed for date: %w", err)
	}

	var packedUpTo []entity.PackedRecord
	if uc.variant == VariantAirtec {
		packedUpTo, err = uc.packed.ListPackedUpTo(ctx, dayEnd)
		if err != nil {
			return nil, fmt.Errorf("daily report: list packed up to date: %w", err)
		}
	}

	report := BuildDailyReport(dayStart, open, packedForDate, packedUpTo, uc.variant, uc.backlogThreshold)
	return &report, nil
}
