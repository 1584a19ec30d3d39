package packing

import "github.com/pakwerk/magazijn-api/internal/application/dto"

// ReportPDFGenerator renders a daily report as a printable PDF.
// Implemented by the pdf infrastructure package.
type ReportPDFGenerator interface {
	GenerateDailyReport(report dto.DailyReportDTO) ([]byte, error)
}
