package repository

import (
	"context"
	"time"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// PackQueueRepository reads open lines of a packing queue. The plain prepack
// queue and the Airtec queue live in separate tables but share this shape.
type PackQueueRepository interface {
	// ListOpen returns every open (not yet packed) queue item.
	ListOpen(ctx context.Context) ([]entity.QueueItem, error)

	// ListOpenAddedUpTo returns the open items whose intake date falls on or
	// before the given instant (used to rebuild the queue as of a past date).
	ListOpenAddedUpTo(ctx context.Context, upTo time.Time) ([]entity.QueueItem, error)
}

// PackedRepository reads completed packing lines.
type PackedRepository interface {
	// ListPackedBetween returns records packed within [from, to].
	ListPackedBetween(ctx context.Context, from, to time.Time) ([]entity.PackedRecord, error)

	// ListPackedUpTo returns every record in the packed history as of the
	// given instant (cumulative throughput, Airtec report variant). The
	// Airtec table keys this on the intake date.
	ListPackedUpTo(ctx context.Context, upTo time.Time) ([]entity.PackedRecord, error)
}
