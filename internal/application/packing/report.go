package packing

import (
	"fmt"
	"time"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

// Variant selects which packing stream a report covers. The two streams use
// separate tables and disagree on what "total" means, see dto.DailyReportDTO.
type Variant string

const (
	VariantPrepack Variant = "prepack"
	VariantAirtec  Variant = "airtec"
)

// BuildDailyReport aggregates the daily packing report for the given date.
//
//	open          queue items still open at end of the report date
//	packedForDate records packed during the report date itself
//	packedUpTo    all records packed up to and including the report date;
//	              only consulted for the Airtec variant, pass nil otherwise
//
// Pure; reference time for backlog aging is the report date.
func BuildDailyReport(date time.Time, open []entity.QueueItem, packedForDate, packedUpTo []entity.PackedRecord, variant Variant, backlogThreshold int) dto.DailyReportDTO {
	part := PartitionByAge(open, date, backlogThreshold)

	openQuantity := SumAmounts(open)
	backlogQuantity := SumAmounts(part.Backlog)
	packedQuantity := SumPackedAmounts(packedForDate)

	priorityQuantity := 0
	for _, it := range open {
		if it.Priority {
			priorityQuantity += it.Amount
		}
	}

	totalQuantity := openQuantity
	if variant == VariantAirtec {
		totalQuantity = openQuantity + SumPackedAmounts(packedUpTo)
	}

	return dto.DailyReportDTO{
		Date:             date.Format("2006-01-02"),
		TotalQuantity:    totalQuantity,
		BacklogQuantity:  backlogQuantity,
		PriorityQuantity: priorityQuantity,
		PackedQuantity:   packedQuantity,
		Recommendations:  recommendations(totalQuantity, backlogQuantity, priorityQuantity),
	}
}

// recommendations mirrors what planners acted on historically, so the exact
// wording is load bearing for the frontend.
func recommendations(total, backlog, priority int) []string {
	recs := []string{}
	if total > 0 && float64(backlog) > float64(total)*0.3 {
		recs = append(recs, "Backlog is high (>30%). Consider additional capacity.")
	}
	if priority > 0 {
		recs = append(recs, fmt.Sprintf("%d priority items require immediate attention.", priority))
	}
	if backlog == 0 {
		recs = append(recs, "Excellent! No backlog in packing.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Packing is proceeding according to plan.")
	}
	return recs
}
