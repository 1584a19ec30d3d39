package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var (
	_ repository.TimeLogRepository  = (*TimeLogRepo)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
)

// TimeLogRepo reads employee time registrations.
type TimeLogRepo struct {
	pool *pgxpool.Pool
}

func NewTimeLogRepository(pool *pgxpool.Pool) *TimeLogRepo {
	return &TimeLogRepo{pool: pool}
}

func (r *TimeLogRepo) ListByTypeStartedBetween(ctx context.Context, logType string, from, to time.Time) ([]entity.TimeLog, error) {
	query := `
		SELECT id, employee_id, start_time, end_time,
		       COALESCE(production_order_number, ''), COALESCE(production_item_number, ''),
		       COALESCE(production_step, '')
		FROM time_logs
		WHERE type = $1`
	args := []any{logType}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND start_time <= $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time logs: %w", err)
	}
	defer rows.Close()

	var logs []entity.TimeLog
	for rows.Next() {
		var l entity.TimeLog
		l.Type = logType
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.StartTime, &l.EndTime,
			&l.ProductionOrderNumber, &l.ProductionItemNumber, &l.ProductionStep); err != nil {
			return nil, fmt.Errorf("scan time log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// EmployeeRepo resolves employee names.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

func (r *EmployeeRepo) ListByIDs(ctx context.Context, ids []int64) ([]entity.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, name FROM employees WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
