package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// ErrNothingToExport is returned when no sheet would be written.
var ErrNothingToExport = errors.New("nothing to export")

// headerFill is the header row background of every workbook.
const headerFill = "#366092"

// GenerateGRPSExcel creates the scope item to contract item mapping workbook,
// one sheet per discipline, and returns the file contents.
func GenerateGRPSExcel(sheets []GRPSExportSheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}

	// Scope item column: borders, top aligned.
	nameStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create name style: %w", err)
	}

	// Contract items column: borders, wrapped.
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create wrap style: %w", err)
	}

	names := sheetNames{}
	for _, sheet := range sheets {
		name, err := addSheet(f, names, sheet.Title)
		if err != nil {
			return nil, err
		}

		f.SetColWidth(name, "A", "A", 50)
		f.SetColWidth(name, "B", "B", 80)

		f.SetCellValue(name, "A1", "Scope Item")
		f.SetCellValue(name, "B1", "Contract Items (Derived From)")
		f.SetCellStyle(name, "A1", "B1", headerStyle)

		for j, r := range sheet.Rows {
			row := j + 2
			a, _ := excelize.CoordinatesToCellName(1, row)
			b, _ := excelize.CoordinatesToCellName(2, row)
			f.SetCellValue(name, a, sanitizeExcelCell(r.ScopeItem))
			f.SetCellValue(name, b, sanitizeExcelCell(r.ContractItemsText()))
			f.SetCellStyle(name, a, a, nameStyle)
			f.SetCellStyle(name, b, b, wrapStyle)
		}

		if err := freezeHeaderRow(f, name); err != nil {
			return nil, err
		}
	}

	return writeWorkbook(f)
}

// addSheet renames the default sheet for the first name handed out and
// appends new sheets afterwards.
func addSheet(f *excelize.File, names sheetNames, title string) (string, error) {
	first := len(names) == 0
	name := names.next(title)
	if first {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return "", fmt.Errorf("set sheet name: %w", err)
		}
		return name, nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return "", fmt.Errorf("add sheet %s: %w", name, err)
	}
	return name, nil
}

// maxSheetName is Excel's worksheet name limit in characters.
const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "-", `\`, "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")",
)

// sheetNames tracks the worksheet names used in one workbook. Excel compares
// names case-insensitively, so keys are lower-cased.
type sheetNames map[string]bool

// next returns a valid name for title that is not used yet in the workbook,
// adding " (2)", " (3)" and so on when the cleaned title is taken.
func (used sheetNames) next(title string) string {
	base := cleanSheetName(title)
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

// cleanSheetName replaces the characters Excel rejects in sheet names, drops
// leading and trailing apostrophes and truncates to the length limit.
func cleanSheetName(title string) string {
	name := sheetNameReplacer.Replace(title)
	name = strings.TrimSpace(strings.Trim(name, "'"))
	name = strings.TrimSpace(truncateRunes(name, maxSheetName))
	if name == "" {
		return "Sheet"
	}
	return name
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// newHeaderStyle returns the bold white-on-blue, centered header style.
func newHeaderStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{headerFill},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return 0, fmt.Errorf("create header style: %w", err)
	}
	return style, nil
}

func freezeHeaderRow(f *excelize.File, sheet string) error {
	err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("freeze header of %s: %w", sheet, err)
	}
	return nil
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
