package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

func ts(y int, m time.Month, day, h, min int) time.Time {
	return time.Date(y, m, day, h, min, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestRollupHours(t *testing.T) {
	now := ts(2024, 6, 10, 17, 0)

	logs := []entity.TimeLog{
		{
			EmployeeID:            1,
			StartTime:             ts(2024, 6, 10, 8, 0),
			EndTime:               ptr(ts(2024, 6, 10, 10, 0)),
			ProductionOrderNumber: "PO-1",
			ProductionStep:        "Zagen",
			ProductionItemNumber:  "ITEM-A",
		},
		{
			EmployeeID:            1,
			StartTime:             ts(2024, 6, 10, 10, 0),
			EndTime:               ptr(ts(2024, 6, 10, 11, 0)),
			ProductionOrderNumber: "PO-1",
			ProductionStep:        "Monteren",
			ProductionItemNumber:  "ITEM-A",
		},
		{
			EmployeeID:            2,
			StartTime:             ts(2024, 6, 10, 8, 0),
			EndTime:               ptr(ts(2024, 6, 10, 12, 0)), // spans the 11:00-11:30 break: 3.5h
			ProductionOrderNumber: "PO-2",
			ProductionStep:        "Zagen",
		},
	}
	names := map[int64]string{1: "Jan", 2: "Piet"}

	r := RollupHours(logs, names, now)

	require.Len(t, r.Orders, 2)
	assert.Equal(t, "PO-2", r.Orders[0].Key)
	assert.Equal(t, 3.5, r.Orders[0].Hours)
	assert.Equal(t, "PO-1", r.Orders[1].Key)
	assert.Equal(t, 3.0, r.Orders[1].Hours)

	require.Len(t, r.Steps, 2)
	assert.Equal(t, "Zagen", r.Steps[0].Key)
	assert.Equal(t, 5.5, r.Steps[0].Hours)

	require.Len(t, r.Employees, 2)
	assert.Equal(t, "Piet", r.Employees[0].Key)
	assert.Equal(t, 3.5, r.Employees[0].Hours)
	assert.Equal(t, "Jan", r.Employees[1].Key)

	// log without item number lands in the Onbekend bucket
	require.Len(t, r.Items, 2)
	assert.Equal(t, "Onbekend", r.Items[0].Key)
	assert.Equal(t, 3.5, r.Items[0].Hours)
}

func TestRollupHours_OpenLogClosedAtNow(t *testing.T) {
	now := ts(2024, 6, 10, 10, 0)
	logs := []entity.TimeLog{
		{EmployeeID: 1, StartTime: ts(2024, 6, 10, 8, 0), ProductionOrderNumber: "PO-1"},
	}

	r := RollupHours(logs, map[int64]string{1: "Jan"}, now)

	require.Len(t, r.Orders, 1)
	assert.Equal(t, 2.0, r.Orders[0].Hours)
}

func TestRollupHours_UnknownEmployeeGetsFallbackName(t *testing.T) {
	logs := []entity.TimeLog{
		{EmployeeID: 42, StartTime: ts(2024, 6, 10, 8, 0), EndTime: ptr(ts(2024, 6, 10, 9, 0))},
	}

	r := RollupHours(logs, map[int64]string{}, ts(2024, 6, 10, 17, 0))

	require.Len(t, r.Employees, 1)
	assert.Equal(t, "Employee 42", r.Employees[0].Key)
}

type fakeTimeLogRepo struct {
	logs    []entity.TimeLog
	gotType string
	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeTimeLogRepo) ListByTypeStartedBetween(ctx context.Context, logType string, from, to time.Time) ([]entity.TimeLog, error) {
	f.gotType, f.gotFrom, f.gotTo = logType, from, to
	return f.logs, nil
}

type fakeEmployeeRepo struct {
	employees []entity.Employee
}

func (f *fakeEmployeeRepo) ListByIDs(ctx context.Context, ids []int64) ([]entity.Employee, error) {
	return f.employees, nil
}

func TestKPIUseCase_Report(t *testing.T) {
	logs := &fakeTimeLogRepo{logs: []entity.TimeLog{
		{EmployeeID: 1, StartTime: ts(2024, 6, 10, 8, 0), EndTime: ptr(ts(2024, 6, 10, 9, 0)), ProductionOrderNumber: "PO-1"},
	}}
	employees := &fakeEmployeeRepo{employees: []entity.Employee{{ID: 1, Name: "Jan"}}}

	uc := NewKPIUseCase(logs, employees)

	from, to := ts(2024, 6, 1, 0, 0), ts(2024, 6, 30, 0, 0)
	r, err := uc.Report(context.Background(), from, to, ts(2024, 6, 10, 17, 0))
	require.NoError(t, err)

	assert.Equal(t, entity.TimeLogProductionOrder, logs.gotType)
	assert.True(t, logs.gotFrom.Equal(from))
	assert.True(t, logs.gotTo.Equal(to))
	require.Len(t, r.Employees, 1)
	assert.Equal(t, "Jan", r.Employees[0].Key)
	assert.Equal(t, 1.0, r.Employees[0].Hours)
}
