package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var bidItemHeaders = []string{
	"Item #", "Bid Item Description", "Category", "Status", "Drawing Reference", "Specification Reference",
}

// GenerateBidItemsExcel writes every scope's bid items, grouped by category,
// to a workbook with one sheet per scope.
func GenerateBidItemsExcel(sheets []BidItemExportSheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	names := sheetNames{}
	for _, sheet := range sheets {
		name, err := addSheet(f, names, sheet.Title)
		if err != nil {
			return nil, err
		}

		rows := [][]string{bidItemHeaders}
		for _, r := range sheet.Rows {
			rows = append(rows, []string{r.ItemNumber, r.Description, r.Category, r.Status, r.DrawingRefs, r.SpecRefs})
		}

		for r, values := range rows {
			for c, v := range values {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				f.SetCellValue(name, cell, sanitizeExcelCell(v))
			}
		}

		lastHeader, _ := excelize.CoordinatesToCellName(len(bidItemHeaders), 1)
		f.SetCellStyle(name, "A1", lastHeader, headerStyle)
		f.SetRowHeight(name, 1, 30)
		if len(rows) > 1 {
			last, _ := excelize.CoordinatesToCellName(len(bidItemHeaders), len(rows))
			f.SetCellStyle(name, "A2", last, cellStyle)
		}

		for c := range bidItemHeaders {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetColWidth(name, col, col, columnWidth(rows, c))
		}
	}

	return writeWorkbook(f)
}
