package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// GeneratePackageMappingExcel writes the package group to spec workbook with
// one sheet per discipline.
func GeneratePackageMappingExcel(pm *PackageMappings) ([]byte, error) {
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
	for _, d := range Disciplines() {
		name, err := addSheet(f, names, d.Title())
		if err != nil {
			return nil, err
		}

		rows := [][]string{{"Package Group", "Specs"}}
		for _, g := range pm.Groups[d] {
			specs := make([]string, 0, len(g.Specs))
			for _, s := range g.Specs {
				specs = append(specs, s.String())
			}
			rows = append(rows, []string{g.Name, strings.Join(specs, "\n")})
		}

		for r, values := range rows {
			for c, v := range values {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				f.SetCellValue(name, cell, sanitizeExcelCell(v))
			}
		}

		f.SetCellStyle(name, "A1", "B1", headerStyle)
		f.SetRowHeight(name, 1, 30)
		if len(rows) > 1 {
			last, _ := excelize.CoordinatesToCellName(2, len(rows))
			f.SetCellStyle(name, "A2", last, cellStyle)
		}

		for c, col := range []string{"A", "B"} {
			f.SetColWidth(name, col, col, columnWidth(rows, c))
		}
	}

	return writeWorkbook(f)
}

// columnWidth sizes a column to its longest line plus two, capped at 100.
func columnWidth(rows [][]string, col int) float64 {
	longest := 0
	for _, r := range rows {
		if col >= len(r) {
			continue
		}
		for _, line := range strings.Split(r[col], "\n") {
			if n := utf8.RuneCountInString(line); n > longest {
				longest = n
			}
		}
	}
	return float64(min(longest+2, 100))
}
