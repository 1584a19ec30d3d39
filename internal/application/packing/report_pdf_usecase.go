package packing

import (
	"context"
	"fmt"
	"time"
)

// ReportPDFUseCase renders the daily report of one queue variant as PDF.
type ReportPDFUseCase struct {
	report    *ReportUseCase
	generator ReportPDFGenerator
}

func NewReportPDFUseCase(report *ReportUseCase, generator ReportPDFGenerator) *ReportPDFUseCase {
	return &ReportPDFUseCase{report: report, generator: generator}
}

// DailyReportPDF builds the report and renders it. Returns the PDF bytes and
// a download filename.
func (uc *ReportPDFUseCase) DailyReportPDF(ctx context.Context, date time.Time) ([]byte, string, error) {
	report, err := uc.report.DailyReport(ctx, date)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateDailyReport(*report)
	if err != nil {
		return nil, "", fmt.Errorf("daily report pdf: %w", err)
	}
	return pdf, fmt.Sprintf("inpak-rapport-%s.pdf", report.Date), nil
}
