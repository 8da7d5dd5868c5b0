package services

import (
	"encoding/json"
	"fmt"
)

// Discipline identifies one of the MEP trades.
type Discipline string

const (
	DisciplineElectrical Discipline = "electrical"
	DisciplineMechanical Discipline = "mechanical"
	DisciplinePlumbing   Discipline = "plumbing"
)

// Disciplines returns the disciplines in display order.
func Disciplines() []Discipline {
	return []Discipline{DisciplineElectrical, DisciplineMechanical, DisciplinePlumbing}
}

// ParseDiscipline validates a discipline name.
func ParseDiscipline(s string) (Discipline, error) {
	for _, d := range Disciplines() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown discipline %q", s)
}

// Title returns the display name, e.g. "Electrical".
func (d Discipline) Title() string {
	switch d {
	case DisciplineElectrical:
		return "Electrical"
	case DisciplineMechanical:
		return "Mechanical"
	case DisciplinePlumbing:
		return "Plumbing"
	}
	return string(d)
}

// GRPSBidItem is one entry of grps_{discipline}_bid_items.json, keyed by its
// description in the file.
type GRPSBidItem struct {
	Description string
	ID          FlexID   `json:"id"`
	Sheets      []DocRef `json:"sheets"`
	Specs       []DocRef `json:"specs"`
}

// ScopeItem is one entry of grps_{discipline}_scope_items.json, keyed by name.
type ScopeItem struct {
	Name         string
	ScopeItemID  FlexID   `json:"scope_item_id"`
	CombinedFrom []FlexID `json:"combined_from"`
}

// GRPSDataset holds the three files of one discipline after normalization.
type GRPSDataset struct {
	Discipline    Discipline
	BidItems      []GRPSBidItem
	ContractItems *ContractItemSet
	ScopeItems    []ScopeItem
}

// GRPSData is the result of loading every discipline. A discipline that failed
// to load has an entry in Errors and none in Datasets.
type GRPSData struct {
	Datasets map[Discipline]*GRPSDataset
	Errors   map[Discipline]error
}

// Dataset returns the dataset for d, or nil when it is not loaded.
func (g *GRPSData) Dataset(d Discipline) *GRPSDataset {
	if g == nil {
		return nil
	}
	return g.Datasets[d]
}

// ParseGRPSBidItems decodes a (possibly fenced) GRPS bid items file.
func ParseGRPSBidItems(data []byte) ([]GRPSBidItem, error) {
	entries, err := decodeOrderedObject(StripCodeFence(data))
	if err != nil {
		return nil, fmt.Errorf("parse bid items: %w", err)
	}
	items := make([]GRPSBidItem, 0, len(entries))
	for _, e := range entries {
		var item GRPSBidItem
		if err := json.Unmarshal(e.Value, &item); err != nil {
			return nil, fmt.Errorf("parse bid item %q: %w", e.Key, err)
		}
		item.Description = e.Key
		items = append(items, item)
	}
	return items, nil
}

// ParseScopeItems decodes a GRPS scope items file.
func ParseScopeItems(data []byte) ([]ScopeItem, error) {
	entries, err := decodeOrderedObject(data)
	if err != nil {
		return nil, fmt.Errorf("parse scope items: %w", err)
	}
	items := make([]ScopeItem, 0, len(entries))
	for _, e := range entries {
		var item ScopeItem
		if err := json.Unmarshal(e.Value, &item); err != nil {
			return nil, fmt.Errorf("parse scope item %q: %w", e.Key, err)
		}
		item.Name = e.Key
		items = append(items, item)
	}
	return items, nil
}
