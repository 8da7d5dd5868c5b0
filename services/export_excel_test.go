package services

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestBuildGRPSExport(t *testing.T) {
	sheets := BuildGRPSExport(fixtureLoader().LoadGRPS(context.Background()))
	if len(sheets) != 3 {
		t.Fatalf("sheets = %d, want 3", len(sheets))
	}

	mech := sheets[1]
	if mech.Title != "Mechanical" {
		t.Fatalf("second sheet = %q", mech.Title)
	}
	row := mech.Rows[0]
	if row.ScopeItem != "[1] HVAC Package" {
		t.Errorf("scope item = %q", row.ScopeItem)
	}
	want := []string{"1: Air handling units", "2: Ductwork", "9: (Not found in contract items)"}
	if len(row.ContractItems) != len(want) {
		t.Fatalf("contract lines = %v", row.ContractItems)
	}
	for i := range want {
		if row.ContractItems[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, row.ContractItems[i], want[i])
		}
	}

	spare := sheets[0].Rows[1]
	if spare.ContractItemsText() != "None" {
		t.Errorf("empty combined_from = %q, want None", spare.ContractItemsText())
	}
}

func TestBuildGRPSExport_SkipsUnloaded(t *testing.T) {
	data := &GRPSData{Datasets: map[Discipline]*GRPSDataset{
		DisciplinePlumbing: {Discipline: DisciplinePlumbing, ContractItems: newContractItemSet(),
			ScopeItems: []ScopeItem{{Name: "Fixtures"}}},
		DisciplineMechanical: {Discipline: DisciplineMechanical, ContractItems: newContractItemSet()},
	}}
	sheets := BuildGRPSExport(data)
	if len(sheets) != 1 || sheets[0].Title != "Plumbing" {
		t.Errorf("sheets = %+v", sheets)
	}
	if sheets[0].Rows[0].ScopeItem != "Fixtures" {
		t.Errorf("scope item without id = %q", sheets[0].Rows[0].ScopeItem)
	}
}

func TestGenerateGRPSExcel(t *testing.T) {
	sheets := BuildGRPSExport(fixtureLoader().LoadGRPS(context.Background()))
	result, err := GenerateGRPSExcel(sheets)
	if err != nil {
		t.Fatalf("GenerateGRPSExcel() error = %v", err)
	}

	f := openWorkbook(t, result)
	names := f.GetSheetList()
	if len(names) != 3 || names[0] != "Electrical" || names[2] != "Plumbing" {
		t.Errorf("sheet names = %v", names)
	}
	if got := cellValue(t, f, "Electrical", "A1"); got != "Scope Item" {
		t.Errorf("A1 = %q", got)
	}
	if got := cellValue(t, f, "Electrical", "B1"); got != "Contract Items (Derived From)" {
		t.Errorf("B1 = %q", got)
	}
	if got := cellValue(t, f, "Electrical", "A2"); got != "[1] Lighting Package" {
		t.Errorf("A2 = %q", got)
	}
	if got := cellValue(t, f, "Electrical", "B2"); got != "1: Lighting fixtures\n2: Panelboards \"main\" and feeders" {
		t.Errorf("B2 = %q", got)
	}

	width, _ := f.GetColWidth("Electrical", "B")
	if width != 80 {
		t.Errorf("column B width = %v, want 80", width)
	}
	panes, err := f.GetPanes("Electrical")
	if err != nil || !panes.Freeze || panes.YSplit != 1 {
		t.Errorf("header row not frozen: %+v, %v", panes, err)
	}
}

func TestGenerateGRPSExcel_Empty(t *testing.T) {
	if _, err := GenerateGRPSExcel(nil); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("err = %v, want ErrNothingToExport", err)
	}
}

func TestGeneratePackageMappingExcel(t *testing.T) {
	pm, err := fixtureLoader().LoadPackageMappings(context.Background())
	if err != nil {
		t.Fatalf("LoadPackageMappings error: %v", err)
	}
	result, err := GeneratePackageMappingExcel(pm)
	if err != nil {
		t.Fatalf("GeneratePackageMappingExcel() error = %v", err)
	}

	f := openWorkbook(t, result)
	if names := f.GetSheetList(); len(names) != 3 || names[1] != "Mechanical" {
		t.Errorf("sheet names = %v", names)
	}
	if got := cellValue(t, f, "Electrical", "A3"); got != "Power" {
		t.Errorf("A3 = %q", got)
	}
	if got := cellValue(t, f, "Electrical", "B3"); got != "26 24 16 - Panelboards\n26 05 19 - Conductors" {
		t.Errorf("B3 = %q", got)
	}
	if h, _ := f.GetRowHeight("Electrical", 1); h != 30 {
		t.Errorf("header height = %v, want 30", h)
	}
}

func TestGeneratePackageMappingExcel_EmptyMapping(t *testing.T) {
	result, err := GeneratePackageMappingExcel(NewPackageMappings())
	if err != nil {
		t.Fatalf("GeneratePackageMappingExcel() error = %v", err)
	}
	f := openWorkbook(t, result)
	if got := cellValue(t, f, "Plumbing", "A1"); got != "Package Group" {
		t.Errorf("A1 = %q", got)
	}
}

func TestGenerateBidItemsExcel(t *testing.T) {
	bd, err := fixtureLoader().LoadBidData(context.Background())
	if err != nil {
		t.Fatalf("LoadBidData error: %v", err)
	}
	result, err := GenerateBidItemsExcel(BuildBidItemExport(bd))
	if err != nil {
		t.Fatalf("GenerateBidItemsExcel() error = %v", err)
	}

	f := openWorkbook(t, result)
	if names := f.GetSheetList(); len(names) != 2 || names[0] != "Electrical" {
		t.Errorf("sheet names = %v", names)
	}
	for i, h := range bidItemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if got := cellValue(t, f, "Electrical", cell); got != h {
			t.Errorf("header %s = %q, want %q", cell, got, h)
		}
	}
	// Lighting sorts before Power, and item 1 before item 2.
	if got := cellValue(t, f, "Electrical", "A2"); got != "1" {
		t.Errorf("A2 = %q, want 1", got)
	}
	if got := cellValue(t, f, "Electrical", "E3"); got != "E-101, E-102" {
		t.Errorf("E3 = %q", got)
	}
	if got := cellValue(t, f, "Electrical", "C5"); got != "Power" {
		t.Errorf("C5 = %q", got)
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want float64
	}{
		{"longest line plus two", [][]string{{"abc"}, {"a\nabcdef"}}, 8},
		{"capped at 100", [][]string{{string(make([]byte, 150))}}, 100},
		{"short rows skipped", [][]string{{}, {"ab"}}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnWidth(tt.rows, 0); got != tt.want {
				t.Errorf("columnWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with at", "@import", "'@import"},
		{"starts with pipe", "|command", "'|command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSheetNames(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{"forbidden characters", []string{"Fire/Life Safety", `Site: Work [Phase 1]?`, `A\B*C`}, []string{"Fire-Life Safety", "Site- Work (Phase 1)-", "A-B-C"}},
		{"apostrophes trimmed", []string{"'Quoted'"}, []string{"Quoted"}},
		{"empty title", []string{"", ""}, []string{"Sheet", "Sheet (2)"}},
		{"truncated to 31", []string{"Electrical Power Distribution and Lighting"}, []string{"Electrical Power Distribution a"}},
		{
			"long names sharing a prefix",
			[]string{"Electrical Power Distribution and Lighting", "Electrical Power Distribution and Controls"},
			[]string{"Electrical Power Distribution a", "Electrical Power Distributi (2)"},
		},
		{"case-insensitive duplicates", []string{"Power", "power", "POWER"}, []string{"Power", "power (2)", "POWER (3)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := sheetNames{}
			for i, title := range tt.titles {
				got := names.next(title)
				if got != tt.want[i] {
					t.Errorf("next(%q) = %q, want %q", title, got, tt.want[i])
				}
				if n := len([]rune(got)); n > maxSheetName {
					t.Errorf("next(%q) has %d characters", title, n)
				}
			}
		})
	}
}

func TestGenerateBidItemsExcel_SheetNamesStayDistinct(t *testing.T) {
	sheets := []BidItemExportSheet{
		{Title: "Fire/Life Safety", Rows: []BidItemExportRow{{ItemNumber: "1"}}},
		{Title: "Electrical Power Distribution and Lighting", Rows: []BidItemExportRow{{ItemNumber: "2"}}},
		{Title: "Electrical Power Distribution and Controls", Rows: []BidItemExportRow{{ItemNumber: "3"}}},
	}
	result, err := GenerateBidItemsExcel(sheets)
	if err != nil {
		t.Fatalf("GenerateBidItemsExcel() error = %v", err)
	}

	f := openWorkbook(t, result)
	want := []string{"Fire-Life Safety", "Electrical Power Distribution a", "Electrical Power Distributi (2)"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheet names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet %d = %q, want %q", i, got[i], want[i])
		}
		if v := cellValue(t, f, want[i], "A2"); v != sheets[i].Rows[0].ItemNumber {
			t.Errorf("%s A2 = %q, want %q", want[i], v, sheets[i].Rows[0].ItemNumber)
		}
	}
}
