package dto

// DailyReportDTO response of GET /api/items-to-pack{,-airtec}/report.
//
// Note on TotalQuantity: the plain report counts the open queue only, the
// Airtec report adds everything ever packed up to the report date (cumulative
// throughput view). The two flavors have always diverged here; whether that
// is intentional is an open product question, so both behaviors are kept
// as-is per variant.
type DailyReportDTO struct {
	Date             string   `json:"date"` // YYYY-MM-DD
	TotalQuantity    int      `json:"totalQuantity"`
	BacklogQuantity  int      `json:"backlogQuantity"`
	PriorityQuantity int      `json:"priorityQuantity"`
	PackedQuantity   int      `json:"packedQuantity"`
	Recommendations  []string `json:"recommendations"`
}

// PrepackQueueDTO response of GET /api/admin/prepack-queue.
// AvgLeadTimeDays is null (not 0) when no packed record in the window has a
// usable intake date: callers must distinguish "no data" from "zero lead time".
type PrepackQueueDTO struct {
	QueueStuks        int      `json:"queueStuks"`
	QueueLines        int      `json:"queueLines"`
	BacklogStuks      int      `json:"backlogStuks"`
	BacklogLines      int      `json:"backlogLines"`
	PriorityStuks     int      `json:"priorityStuks"`
	OldestWorkingDays int      `json:"oldestWorkingDays"`
	AvgLeadTimeDays   *float64 `json:"avgLeadTimeDays"`
	BacklogPct        int      `json:"backlogPct"`
}
