package production

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
	"github.com/pakwerk/magazijn-api/internal/domain/timesheet"
)

// Unknown bucket for logs missing an order/step/item reference.
const unknownKey = "Onbekend"

// KPIUseCase sums worked hours over production time logs, grouped by order,
// step, employee and produced item.
type KPIUseCase struct {
	logs      repository.TimeLogRepository
	employees repository.EmployeeRepository
}

func NewKPIUseCase(logs repository.TimeLogRepository, employees repository.EmployeeRepository) *KPIUseCase {
	return &KPIUseCase{logs: logs, employees: employees}
}

// Report builds the KPI report over logs started within [from, to]. Zero
// bounds are open. Logs still running are valued up to now.
func (uc *KPIUseCase) Report(ctx context.Context, from, to, now time.Time) (*dto.KPIReportDTO, error) {
	logs, err := uc.logs.ListByTypeStartedBetween(ctx, entity.TimeLogProductionOrder, from, to)
	if err != nil {
		return nil, fmt.Errorf("kpi report: list time logs: %w", err)
	}

	names, err := uc.employeeNames(ctx, logs)
	if err != nil {
		return nil, fmt.Errorf("kpi report: list employees: %w", err)
	}

	report := RollupHours(logs, names, now)
	return &report, nil
}

func (uc *KPIUseCase) employeeNames(ctx context.Context, logs []entity.TimeLog) (map[int64]string, error) {
	seen := map[int64]bool{}
	ids := []int64{}
	for _, l := range logs {
		if !seen[l.EmployeeID] {
			seen[l.EmployeeID] = true
			ids = append(ids, l.EmployeeID)
		}
	}
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	employees, err := uc.employees.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}

// RollupHours sums worked hours per grouping key. Pure; open logs (nil
// EndTime) are closed at now. Break time is already deducted by
// timesheet.WorkedSeconds.
func RollupHours(logs []entity.TimeLog, employeeNames map[int64]string, now time.Time) dto.KPIReportDTO {
	orders := map[string]float64{}
	steps := map[string]float64{}
	employees := map[string]float64{}
	items := map[string]float64{}

	for _, log := range logs {
		end := now
		if log.EndTime != nil {
			end = *log.EndTime
		}
		hours := timesheet.WorkedHours(log.StartTime, end)

		name, ok := employeeNames[log.EmployeeID]
		if !ok {
			name = fmt.Sprintf("Employee %d", log.EmployeeID)
		}

		orders[keyOrUnknown(log.ProductionOrderNumber)] += hours
		steps[keyOrUnknown(log.ProductionStep)] += hours
		items[keyOrUnknown(log.ProductionItemNumber)] += hours
		employees[name] += hours
	}

	return dto.KPIReportDTO{
		Orders:    sortedTotals(orders),
		Steps:     sortedTotals(steps),
		Employees: sortedTotals(employees),
		Items:     sortedTotals(items),
	}
}

func keyOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownKey
	}
	return s
}

// sortedTotals flattens a totals map, rounds to 2 decimals and sorts by
// hours descending (key ascending on ties, for stable output).
func sortedTotals(totals map[string]float64) []dto.HourTotalDTO {
	out := make([]dto.HourTotalDTO, 0, len(totals))
	for key, hours := range totals {
		out = append(out, dto.HourTotalDTO{
			Key:   key,
			Hours: math.Round(hours*100) / 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Key < out[j].Key
	})
	return out
}
