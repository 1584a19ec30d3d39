package entity

import "time"

// Time log types.
const (
	TimeLogProductionOrder = "production_order"
	TimeLogItemsToPack     = "items_to_pack"
)

// TimeLog a start/stop registration of an employee working on something.
// EndTime is nil while the timer is still running.
type TimeLog struct {
	ID                    int64
	EmployeeID            int64
	Type                  string
	StartTime             time.Time
	EndTime               *time.Time
	ProductionOrderNumber string
	ProductionItemNumber  string
	ProductionStep        string
}

// Employee a warehouse employee referenced by time logs.
type Employee struct {
	ID   int64
	Name string
}
