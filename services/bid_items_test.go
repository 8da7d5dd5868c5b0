package services

import (
	"testing"
)

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Yes", IconYes},
		{"No", IconNo},
		{"Pending", IconPending},
		{"", IconPending},
		{"yes", IconPending},
	}
	for _, tt := range tests {
		if got := StatusIcon(tt.status); got != tt.want {
			t.Errorf("StatusIcon(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusFilter_Matches(t *testing.T) {
	tests := []struct {
		filter StatusFilter
		status string
		want   bool
	}{
		{FilterAll, "anything", true},
		{FilterPending, "Pending", true},
		{FilterPending, "", true},
		{FilterPending, "Yes", false},
		{FilterYes, "Yes", true},
		{FilterYes, "No", false},
		{FilterNo, "No", true},
		{FilterNo, "", false},
	}
	for _, tt := range tests {
		if got := tt.filter.Matches(tt.status); got != tt.want {
			t.Errorf("%s.Matches(%q) = %v, want %v", tt.filter, tt.status, got, tt.want)
		}
	}
}

func TestParseStatusFilter(t *testing.T) {
	for _, f := range StatusFilters() {
		if got, err := ParseStatusFilter(string(f)); err != nil || got != f {
			t.Errorf("ParseStatusFilter(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseStatusFilter("maybe"); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestIsDocumentReferenceItem(t *testing.T) {
	tests := []struct {
		desc string
		want bool
	}{
		{"All Document References", true},
		{"see ALL DOCUMENT REFERENCES for details", true},
		{"All Document Reference", false},
		{"LED fixtures", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDocumentReferenceItem(BidItem{Description: tt.desc}); got != tt.want {
			t.Errorf("IsDocumentReferenceItem(%q) = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestParseBidData(t *testing.T) {
	bd, err := ParseBidData([]byte(`{"scopes": [{"id": "electrical", "code": "26", "name": "Electrical"}]}`))
	if err != nil {
		t.Fatalf("ParseBidData error: %v", err)
	}
	if bd.BidItems == nil {
		t.Error("BidItems must never be nil")
	}
	if s, ok := bd.Scope("electrical"); !ok || s.Name != "Electrical" {
		t.Errorf("Scope(electrical) = %+v, %v", s, ok)
	}
	if _, ok := bd.Scope("plumbing"); ok {
		t.Error("unexpected plumbing scope")
	}

	if _, err := ParseBidData([]byte(`{"scopes": `)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestValidateRefCounts(t *testing.T) {
	bd := &BidData{BidItems: map[string]map[string][]BidItem{
		"electrical": {
			"Lighting": {{
				ItemNumber:  "1",
				DrawingRefs: []Ref{{Category: "Plans", Items: []string{"E-101", "E-102"}, Count: 2}},
				SpecRefs:    []Ref{{Category: "Div 26", Items: []string{"26 51 00"}, Count: 3}},
			}},
		},
	}}

	got := ValidateRefCounts(bd)
	if len(got) != 1 {
		t.Fatalf("mismatches = %d, want 1", len(got))
	}
	if got[0].ItemNumber != "1" || got[0].Ref.Category != "Div 26" {
		t.Errorf("mismatch = %+v", got[0])
	}
}

func TestLessItemNumber(t *testing.T) {
	items := []BidItem{{ItemNumber: "10"}, {ItemNumber: "2"}, {ItemNumber: "1.5"}, {ItemNumber: "B"}, {ItemNumber: "A"}}
	sortByItemNumber(items)

	want := []string{"1.5", "2", "10", "A", "B"}
	for i, item := range items {
		if item.ItemNumber != want[i] {
			t.Errorf("position %d = %q, want %q", i, item.ItemNumber, want[i])
		}
	}
}
