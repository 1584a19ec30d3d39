// Package pdf renders the printable daily packing report that hangs on the
// warehouse notice board.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Inpak dagrapport + datum           │
//	│  ───────────────────────────────────────────│
//	│  TABEL: Totaal | Backlog | Prioriteit | Verpakt │
//	│  ───────────────────────────────────────────│
//	│  AANBEVELINGEN: één regel per advies        │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/packing"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implements packing.ReportPDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReport renders the report and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateDailyReport(report dto.DailyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inpak dagrapport", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(statsHeaderRow())
	m.AddRows(statsValueRow(report))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range recommendationRows(report.Recommendations) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate report: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report dto.DailyReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("INPAK DAGRAPPORT", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Pakwerk Willebroek", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Datum: "+report.Date, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
		),
	)
}

func statsHeaderRow() core.Row {
	h := func(label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Totaal (stuks)"),
		h("Backlog"),
		h("Prioriteit"),
		h("Vandaag verpakt"),
	)
}

func statsValueRow(report dto.DailyReportDTO) core.Row {
	v := func(n int) core.Col {
		return col.New(3).Add(text.New(strconv.Itoa(n), props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center, Top: 1,
		}))
	}
	return row.New(12).Add(
		v(report.TotalQuantity),
		v(report.BacklogQuantity),
		v(report.PriorityQuantity),
		v(report.PackedQuantity),
	)
}

func recommendationRows(recommendations []string) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("AANBEVELINGEN", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, rec := range recommendations {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("• "+rec, props.Text{Size: 9, Top: 1, Left: 2}),
		)))
	}
	return rows
}

var _ packing.ReportPDFGenerator = (*MarotoReportGenerator)(nil)
