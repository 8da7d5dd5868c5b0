package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
)

// ContractItem is the canonical contract item record shared by all
// disciplines. Embedded is true when sheets and specs came with the item
// itself rather than being resolved from bid items.
type ContractItem struct {
	ID               int
	Description      string
	ShortDescription string
	Sheets           []DocRef
	Specs            []DocRef
	Embedded         bool
}

// ContractItemSet is a normalized set of contract items indexed by id.
type ContractItemSet struct {
	items []ContractItem
	byID  map[int]int
}

func newContractItemSet() *ContractItemSet {
	return &ContractItemSet{byID: make(map[int]int)}
}

// add inserts item unless its id is already present. It reports whether the
// item was added.
func (s *ContractItemSet) add(item ContractItem) bool {
	if _, dup := s.byID[item.ID]; dup {
		return false
	}
	s.byID[item.ID] = len(s.items)
	s.items = append(s.items, item)
	return true
}

func (s *ContractItemSet) sortByID() {
	sort.SliceStable(s.items, func(i, j int) bool { return s.items[i].ID < s.items[j].ID })
	for i, item := range s.items {
		s.byID[item.ID] = i
	}
}

// Get returns the item with the given id.
func (s *ContractItemSet) Get(id int) (ContractItem, bool) {
	if s == nil {
		return ContractItem{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return ContractItem{}, false
	}
	return s.items[i], true
}

// Items returns the records ordered by id.
func (s *ContractItemSet) Items() []ContractItem {
	if s == nil {
		return nil
	}
	out := make([]ContractItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct ids.
func (s *ContractItemSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// RawContractItems is a decoded contract items file in its discipline's
// native shape.
type RawContractItems interface {
	Discipline() Discipline
	normalize() (*ContractItemSet, error)
}

// ElectricalEntry is one {"id": "description"} member.
type ElectricalEntry struct {
	Key         string
	Description string
}

// ElectricalContractItems is the id-keyed electrical shape.
type ElectricalContractItems []ElectricalEntry

// Discipline implements RawContractItems.
func (ElectricalContractItems) Discipline() Discipline { return DisciplineElectrical }

func (raw ElectricalContractItems) normalize() (*ContractItemSet, error) {
	set := newContractItemSet()
	for _, e := range raw {
		id, ok := parseID(strings.TrimSpace(e.Key))
		if !ok {
			log.Printf("contract_items: electrical key %q is not an id, skipping", e.Key)
			continue
		}
		if !set.add(ContractItem{ID: id, Description: e.Description}) {
			log.Printf("contract_items: electrical duplicate id %d, keeping first", id)
		}
	}
	set.sortByID()
	return set, nil
}

// MechanicalEntry is one {"description": {"id", "sheets", "specs"}} member.
type MechanicalEntry struct {
	Description string
	ID          FlexID   `json:"id"`
	Sheets      []DocRef `json:"sheets"`
	Specs       []DocRef `json:"specs"`
}

// MechanicalContractItems is the description-keyed mechanical shape.
type MechanicalContractItems []MechanicalEntry

// Discipline implements RawContractItems.
func (MechanicalContractItems) Discipline() Discipline { return DisciplineMechanical }

func (raw MechanicalContractItems) normalize() (*ContractItemSet, error) {
	set := newContractItemSet()
	for _, e := range raw {
		if !e.ID.Valid {
			log.Printf("contract_items: mechanical item %q has no id, skipping", e.Description)
			continue
		}
		item := ContractItem{
			ID:          e.ID.Value,
			Description: e.Description,
			Sheets:      e.Sheets,
			Specs:       e.Specs,
			Embedded:    true,
		}
		if !set.add(item) {
			log.Printf("contract_items: mechanical duplicate id %d, keeping first", e.ID.Value)
		}
	}
	set.sortByID()
	return set, nil
}

// PlumbingEntry is one {"short description": "full description"} member.
type PlumbingEntry struct {
	ShortDescription string
	FullDescription  string
}

// PlumbingContractItems is the positional plumbing shape; entry i has id i+1.
type PlumbingContractItems []PlumbingEntry

// Discipline implements RawContractItems.
func (PlumbingContractItems) Discipline() Discipline { return DisciplinePlumbing }

func (raw PlumbingContractItems) normalize() (*ContractItemSet, error) {
	set := newContractItemSet()
	for i, e := range raw {
		set.add(ContractItem{
			ID:               i + 1,
			Description:      e.FullDescription,
			ShortDescription: e.ShortDescription,
		})
	}
	return set, nil
}

// Normalize converts any contract item shape into a ContractItemSet.
func Normalize(raw RawContractItems) (*ContractItemSet, error) {
	if raw == nil {
		return newContractItemSet(), nil
	}
	set, err := raw.normalize()
	if err != nil {
		return nil, fmt.Errorf("normalize %s contract items: %w", raw.Discipline(), err)
	}
	return set, nil
}

// DecodeContractItems parses a (possibly fenced) contract items file into the
// shape used by discipline d.
func DecodeContractItems(d Discipline, data []byte) (RawContractItems, error) {
	entries, err := decodeOrderedObject(StripCodeFence(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s contract items: %w", d, err)
	}

	switch d {
	case DisciplineElectrical:
		raw := make(ElectricalContractItems, 0, len(entries))
		for _, e := range entries {
			var desc string
			if err := json.Unmarshal(e.Value, &desc); err != nil {
				return nil, fmt.Errorf("parse electrical contract item %q: %w", e.Key, err)
			}
			raw = append(raw, ElectricalEntry{Key: e.Key, Description: desc})
		}
		return raw, nil

	case DisciplineMechanical:
		raw := make(MechanicalContractItems, 0, len(entries))
		for _, e := range entries {
			var entry MechanicalEntry
			if err := json.Unmarshal(e.Value, &entry); err != nil {
				return nil, fmt.Errorf("parse mechanical contract item %q: %w", e.Key, err)
			}
			entry.Description = e.Key
			raw = append(raw, entry)
		}
		return raw, nil

	case DisciplinePlumbing:
		raw := make(PlumbingContractItems, 0, len(entries))
		for _, e := range entries {
			var full string
			if err := json.Unmarshal(e.Value, &full); err != nil {
				return nil, fmt.Errorf("parse plumbing contract item %q: %w", e.Key, err)
			}
			raw = append(raw, PlumbingEntry{ShortDescription: e.Key, FullDescription: full})
		}
		return raw, nil
	}
	return nil, fmt.Errorf("unknown discipline %q", d)
}
