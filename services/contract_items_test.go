package services

import (
	"testing"
)

func decodeAndNormalize(t *testing.T, d Discipline, data string) *ContractItemSet {
	t.Helper()
	raw, err := DecodeContractItems(d, []byte(data))
	if err != nil {
		t.Fatalf("DecodeContractItems(%s) error: %v", d, err)
	}
	if raw.Discipline() != d {
		t.Errorf("Discipline() = %s, want %s", raw.Discipline(), d)
	}
	set, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize(%s) error: %v", d, err)
	}
	return set
}

func ids(set *ContractItemSet) []int {
	var out []int
	for _, item := range set.Items() {
		out = append(out, item.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNormalize_Electrical(t *testing.T) {
	set := decodeAndNormalize(t, DisciplineElectrical,
		"```json\n{\"3\": \"Feeders\", \"1\": \"Lighting\", \"note\": \"not an id\", \"1\": \"Duplicate\", \"2\": \"Panels\"}\n```")

	if got := ids(set); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("ids = %v, want [1 2 3]", got)
	}
	item, ok := set.Get(1)
	if !ok || item.Description != "Lighting" {
		t.Errorf("Get(1) = %+v, %v; want first occurrence 'Lighting'", item, ok)
	}
	if item.Embedded {
		t.Error("electrical items must not carry embedded sheets/specs")
	}
}

func TestNormalize_Mechanical(t *testing.T) {
	set := decodeAndNormalize(t, DisciplineMechanical, `{
		"Air handling units": {"id": 1, "sheets": [["M-101", "HVAC Plan"]], "specs": ["23 73 00"]},
		"Ductwork": {"id": "2", "sheets": [], "specs": []},
		"No id": {"sheets": [], "specs": []}
	}`)

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	item, ok := set.Get(1)
	if !ok {
		t.Fatal("expected item 1")
	}
	if item.Description != "Air handling units" || !item.Embedded {
		t.Errorf("item 1 = %+v", item)
	}
	if len(item.Sheets) != 1 || item.Sheets[0].String() != "M-101 - HVAC Plan" {
		t.Errorf("item 1 sheets = %v", item.Sheets)
	}
	if item, _ := set.Get(2); item.Description != "Ductwork" {
		t.Errorf("string id not decoded: %+v", item)
	}
}

func TestNormalize_PlumbingUsesPosition(t *testing.T) {
	set := decodeAndNormalize(t, DisciplinePlumbing, `{"WC": "Water closets", "LAV": "Lavatories", "UR": "Urinals"}`)

	if got := ids(set); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("ids = %v, want [1 2 3]", got)
	}
	item, _ := set.Get(2)
	if item.ShortDescription != "LAV" || item.Description != "Lavatories" {
		t.Errorf("item 2 = %+v", item)
	}
}

func TestNormalize_IDsUnique(t *testing.T) {
	tests := []struct {
		name string
		d    Discipline
		data string
		want int
	}{
		{"electrical distinct keys", DisciplineElectrical, `{"1": "a", "2": "b", "2": "c"}`, 2},
		{"mechanical distinct ids", DisciplineMechanical, `{"a": {"id": 5}, "b": {"id": 5}, "c": {"id": 6}}`, 2},
		{"plumbing one per position", DisciplinePlumbing, `{"a": "x", "b": "y"}`, 2},
		{"empty", DisciplineElectrical, `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := decodeAndNormalize(t, tt.d, tt.data)
			if set.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", set.Len(), tt.want)
			}
			seen := map[int]bool{}
			for _, item := range set.Items() {
				if seen[item.ID] {
					t.Errorf("duplicate id %d", item.ID)
				}
				seen[item.ID] = true
			}
		})
	}
}

func TestDecodeContractItems_Errors(t *testing.T) {
	tests := []struct {
		name string
		d    Discipline
		data string
	}{
		{"not an object", DisciplineElectrical, `["a"]`},
		{"electrical value not string", DisciplineElectrical, `{"1": {"id": 1}}`},
		{"plumbing value not string", DisciplinePlumbing, `{"WC": 3}`},
		{"unknown discipline", Discipline("fire"), `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeContractItems(tt.d, []byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	set, err := Normalize(nil)
	if err != nil || set.Len() != 0 {
		t.Errorf("Normalize(nil) = %v, %v; want empty set", set, err)
	}
}
