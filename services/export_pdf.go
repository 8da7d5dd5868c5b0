package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateGRPSPDF renders the scope item mapping of every discipline as a
// landscape A4 document and returns the PDF bytes.
func GenerateGRPSPDF(sheets []GRPSExportSheet, generatedOn string) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrNothingToExport
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("GRPS Scope Items Mapping", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	for _, sheet := range sheets {
		addDisciplineHeading(m, sheet.Title)
		addMappingHeader(m)
		for _, r := range sheet.Rows {
			addMappingRow(m, r)
		}
		m.AddRows(row.New(6))
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated on %s", generatedOn), props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 140, Green: 140, Blue: 140},
				}),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addDisciplineHeading(m core.Maroto, title string) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
					Top:   2,
				}),
			),
		),
	)
}

func addMappingHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 54, Green: 96, Blue: 146}}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Scope Item", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Contract Items (Derived From)", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Sheets", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Specs", headerText)).WithStyle(&headerCell),
		),
	)
}

func addMappingRow(m core.Maroto, r GRPSExportRow) {
	cell := props.Text{Size: 7, Align: align.Left}
	contracts := strings.Join(contractLines(r), "; ")
	// Roughly 70 characters fit on one line of the contract column.
	lines := max(1, (len(contracts)+69)/70)
	height := float64(4*lines + 3)

	m.AddRows(
		row.New(height).Add(
			col.New(3).Add(text.New(r.ScopeItem, cell)),
			col.New(5).Add(text.New(contracts, cell)),
			col.New(2).Add(text.New(r.Sheets, cell)),
			col.New(2).Add(text.New(r.Specs, cell)),
		),
	)
}

func contractLines(r GRPSExportRow) []string {
	if len(r.ContractItems) == 0 {
		return []string{"None"}
	}
	return r.ContractItems
}
