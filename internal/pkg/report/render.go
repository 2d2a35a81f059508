package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"scanreport/internal/pkg/caldate"
	"scanreport/internal/pkg/feed"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// Column order is fixed: Date, Item, Client, Department, Quantity, Barcode.
// Widths are twelfths of the page grid.
var columnWidths = []int{2, 3, 2, 2, 1, 2}

var columnTitles = []string{"Date", "Item", "Client", "Department", "Quantity", "Barcode"}

// Renderer produces the daily report PDF.
type Renderer struct{}

// Render lays out an A4 portrait document with a centered title and one
// table row per record, values verbatim and in input order. The PDF
// creation date is pinned to midnight of the report day so identical input
// produces byte-identical output.
func (Renderer) Render(records []feed.ScanRecord, day caldate.CalendarDate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithCreationDate(time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Daily Barcode Report - "+day.SlashFormat(), props.Text{
			Style: fontstyle.Bold,
			Size:  14,
			Align: align.Center,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(2) // spacer

	m.AddRow(8, tableCells(columnTitles, props.Text{
		Style: fontstyle.Bold,
		Size:  9,
		Color: &pdfHeaderColor,
	})...)

	for _, r := range records {
		values := []string{r.Date, r.Item, r.Client, r.Department, string(r.Qty), r.Barcode}
		m.AddRow(6, tableCells(values, props.Text{Size: 9})...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func tableCells(values []string, style props.Text) []core.Col {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = text.NewCol(columnWidths[i], v, style)
	}
	return cols
}
