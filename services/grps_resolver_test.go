package services

import (
	"errors"
	"testing"
)

func electricalDataset(t *testing.T) *GRPSDataset {
	t.Helper()
	bids, err := ParseGRPSBidItems([]byte(`{
		"LED fixtures": {"id": 1, "sheets": [["E-101", "Lighting Plan"]], "specs": ["26 51 00"]},
		"Panelboards": {"id": "2", "sheets": [["E-201", "Power Plan"], ["E-101", "Lighting Plan"]], "specs": []},
		"Panelboards again": {"id": 2, "sheets": [["E-999", "Ignored"]], "specs": []}
	}`))
	if err != nil {
		t.Fatalf("ParseGRPSBidItems error: %v", err)
	}
	raw, err := DecodeContractItems(DisciplineElectrical, []byte(`{"1": "Lighting fixtures", "2": "Panelboards"}`))
	if err != nil {
		t.Fatalf("DecodeContractItems error: %v", err)
	}
	items, _ := Normalize(raw)
	scopes, err := ParseScopeItems([]byte(`{
		"Lighting Package": {"scope_item_id": 1, "combined_from": [1, 2]},
		"Spare": {"scope_item_id": "2", "combined_from": []}
	}`))
	if err != nil {
		t.Fatalf("ParseScopeItems error: %v", err)
	}
	return &GRPSDataset{Discipline: DisciplineElectrical, BidItems: bids, ContractItems: items, ScopeItems: scopes}
}

func TestResolveSheetsSpecs_BorrowsFromBidItem(t *testing.T) {
	r := NewResolver(electricalDataset(t))

	ss, err := r.ResolveSheetsSpecs(2)
	if err != nil {
		t.Fatalf("ResolveSheetsSpecs error: %v", err)
	}
	if got := ss.SheetsText(); got != "E-201 - Power Plan, E-101 - Lighting Plan" {
		t.Errorf("sheets = %q (first bid item with the id must win)", got)
	}
	if got := ss.SpecsText(); got != NoReferences {
		t.Errorf("specs = %q, want %q", got, NoReferences)
	}

	missing, err := r.ResolveSheetsSpecs(42)
	if err != nil {
		t.Fatalf("unknown id should resolve to nothing, got error %v", err)
	}
	if missing.SheetsText() != NoReferences || missing.SpecsText() != NoReferences {
		t.Errorf("unknown id = %+v", missing)
	}
}

func TestResolveSheetsSpecs_MechanicalEmbedded(t *testing.T) {
	raw, err := DecodeContractItems(DisciplineMechanical, []byte(`{
		"Air handling units": {"id": 1, "sheets": [["M-101", "HVAC Plan"]], "specs": [["23 73 00", "AHUs"]]}
	}`))
	if err != nil {
		t.Fatalf("DecodeContractItems error: %v", err)
	}
	items, _ := Normalize(raw)
	// A bid item with the same id must not be consulted.
	bids, _ := ParseGRPSBidItems([]byte(`{"AHU": {"id": 1, "sheets": ["WRONG"], "specs": []}}`))
	r := NewResolver(&GRPSDataset{Discipline: DisciplineMechanical, BidItems: bids, ContractItems: items})

	ss, err := r.ResolveSheetsSpecs(1)
	if err != nil {
		t.Fatalf("ResolveSheetsSpecs error: %v", err)
	}
	if ss.SheetsText() != "M-101 - HVAC Plan" || ss.SpecsText() != "23 73 00 - AHUs" {
		t.Errorf("got %+v", ss)
	}
}

func TestResolveScopeItemAggregate(t *testing.T) {
	ds := electricalDataset(t)
	r := NewResolver(ds)

	tests := []struct {
		name       string
		item       ScopeItem
		wantSheets string
		wantSpecs  string
	}{
		{"dedupes in first-seen order", ds.ScopeItems[0], "E-101 - Lighting Plan, E-201 - Power Plan", "26 51 00"},
		{"empty combined_from", ds.ScopeItems[1], NoReferences, NoReferences},
		{"unknown and invalid ids", ScopeItem{CombinedFrom: []FlexID{{Value: 99, Valid: true}, {}}}, NoReferences, NoReferences},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := r.ResolveScopeItemAggregate(tt.item)
			if err != nil {
				t.Fatalf("ResolveScopeItemAggregate error: %v", err)
			}
			if agg.SheetsText() != tt.wantSheets {
				t.Errorf("sheets = %q, want %q", agg.SheetsText(), tt.wantSheets)
			}
			if agg.SpecsText() != tt.wantSpecs {
				t.Errorf("specs = %q, want %q", agg.SpecsText(), tt.wantSpecs)
			}
		})
	}
}

func TestResolver_NotLoaded(t *testing.T) {
	r := NewResolver(nil)
	if _, err := r.ResolveSheetsSpecs(1); !errors.Is(err, ErrDatasetNotLoaded) {
		t.Errorf("ResolveSheetsSpecs err = %v, want ErrDatasetNotLoaded", err)
	}
	if _, err := r.ResolveScopeItemAggregate(ScopeItem{}); !errors.Is(err, ErrDatasetNotLoaded) {
		t.Errorf("ResolveScopeItemAggregate err = %v, want ErrDatasetNotLoaded", err)
	}
	if got := r.ContractDescription(FlexID{Value: 7, Valid: true}); got != "Contract Item 7" {
		t.Errorf("ContractDescription = %q", got)
	}
}

func TestContractDescription(t *testing.T) {
	r := NewResolver(electricalDataset(t))
	if got := r.ContractDescription(FlexID{Value: 1, Valid: true}); got != "Lighting fixtures" {
		t.Errorf("ContractDescription(1) = %q", got)
	}
	if got := r.ContractDescription(FlexID{Value: 5, Valid: true}); got != "Contract Item 5" {
		t.Errorf("ContractDescription(5) = %q", got)
	}
}

func TestGRPSRows(t *testing.T) {
	ds := electricalDataset(t)

	bids := GRPSRows(ds, GRPSViewBidItems)
	if len(bids) != 3 || bids[0].ID != "1" || bids[0].Description != "LED fixtures" {
		t.Errorf("bid rows = %+v", bids)
	}
	if bids[1].Specs != NoReferences {
		t.Errorf("empty specs = %q, want %q", bids[1].Specs, NoReferences)
	}

	contracts := GRPSRows(ds, GRPSViewContractItems)
	if len(contracts) != 2 || contracts[1].Sheets != "E-201 - Power Plan, E-101 - Lighting Plan" {
		t.Errorf("contract rows = %+v", contracts)
	}

	scopes := GRPSRows(ds, GRPSViewScopeItems)
	if len(scopes) != 2 {
		t.Fatalf("scope rows = %d, want 2", len(scopes))
	}
	if len(scopes[0].Derived) != 2 || scopes[0].Derived[1].Description != "Panelboards" {
		t.Errorf("derived = %+v", scopes[0].Derived)
	}
	if len(scopes[1].Derived) != 0 || scopes[1].Sheets != NoReferences {
		t.Errorf("spare row = %+v", scopes[1])
	}

	if rows := GRPSRows(nil, GRPSViewBidItems); rows != nil {
		t.Errorf("nil dataset rows = %+v", rows)
	}
}

func TestGRPSRows_ScopeItemIDs(t *testing.T) {
	ds := electricalDataset(t)
	ds.ScopeItems = []ScopeItem{
		{Name: "Numbered", ScopeItemID: FlexID{Value: 7, Valid: true}},
		{Name: "Zero", ScopeItemID: FlexID{Value: 0, Valid: true}},
		{Name: "Missing"},
	}

	rows := GRPSRows(ds, GRPSViewScopeItems)
	want := []string{"7", NoReferences, NoReferences}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].ID != w {
			t.Errorf("%s: ID = %q, want %q", rows[i].Description, rows[i].ID, w)
		}
	}
}
