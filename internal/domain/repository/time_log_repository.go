package repository

import (
	"context"
	"time"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// TimeLogRepository reads employee time registrations.
type TimeLogRepository interface {
	// ListByTypeStartedBetween returns logs of the given type whose start
	// time falls within [from, to]. Zero from/to leave that bound open.
	ListByTypeStartedBetween(ctx context.Context, logType string, from, to time.Time) ([]entity.TimeLog, error)
}

// EmployeeRepository resolves employee names for the KPI report.
type EmployeeRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Employee, error)
}
