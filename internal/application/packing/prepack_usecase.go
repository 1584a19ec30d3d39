package packing

import (
	"context"
	"fmt"
	"time"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
	"github.com/pakwerk/magazijn-api/internal/domain/workdays"
)

// PrepackUseCase serves the admin prepack queue snapshot.
type PrepackUseCase struct {
	queue              repository.PackQueueRepository
	packed             repository.PackedRepository
	backlogThreshold   int
	leadTimeWindowDays int
}

func NewPrepackUseCase(queue repository.PackQueueRepository, packed repository.PackedRepository, backlogThreshold, leadTimeWindowDays int) *PrepackUseCase {
	return &PrepackUseCase{
		queue:              queue,
		packed:             packed,
		backlogThreshold:   backlogThreshold,
		leadTimeWindowDays: leadTimeWindowDays,
	}
}

// QueueSnapshot builds the dashboard figures as of now.
func (uc *PrepackUseCase) QueueSnapshot(ctx context.Context, now time.Time) (*dto.PrepackQueueDTO, error) {
	open, err := uc.queue.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("queue snapshot: list open queue: %w", err)
	}

	since := workdays.StartOfDay(now).AddDate(0, 0, -uc.leadTimeWindowDays)
	recent, err := uc.packed.ListPackedBetween(ctx, since, now)
	if err != nil {
		return nil, fmt.Errorf("queue snapshot: list recently packed: %w", err)
	}

	snapshot := BuildQueueSnapshot(now, open, recent, uc.backlogThreshold)
	return &snapshot, nil
}
