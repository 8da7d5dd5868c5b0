package services

import "errors"

// NoReferences is displayed when no sheets or specs resolve.
const NoReferences = "-"

// ErrDatasetNotLoaded distinguishes "not loaded yet" from "nothing resolved".
var ErrDatasetNotLoaded = errors.New("grps dataset not loaded")

// SheetsSpecs is a set of resolved sheet and spec strings.
type SheetsSpecs struct {
	Sheets []string
	Specs  []string
}

// SheetsText joins the sheets with ", " or returns NoReferences.
func (s SheetsSpecs) SheetsText() string { return joinOrSentinel(s.Sheets) }

// SpecsText joins the specs with ", " or returns NoReferences.
func (s SheetsSpecs) SpecsText() string { return joinOrSentinel(s.Specs) }

// Resolver looks up sheets and specs for contract items of one discipline.
type Resolver struct {
	ds       *GRPSDataset
	bidsByID map[int]int
}

// NewResolver indexes ds for lookups. ds may be nil; every call then returns
// ErrDatasetNotLoaded.
func NewResolver(ds *GRPSDataset) *Resolver {
	r := &Resolver{ds: ds, bidsByID: make(map[int]int)}
	if ds == nil {
		return r
	}
	for i, b := range ds.BidItems {
		if !b.ID.Valid {
			continue
		}
		if _, seen := r.bidsByID[b.ID.Value]; !seen {
			r.bidsByID[b.ID.Value] = i
		}
	}
	return r
}

// ResolveSheetsSpecs returns the sheets and specs of one contract item.
// Mechanical items carry them; electrical and plumbing items borrow them from
// the bid item with the same id.
func (r *Resolver) ResolveSheetsSpecs(contractItemID int) (SheetsSpecs, error) {
	if r.ds == nil {
		return SheetsSpecs{}, ErrDatasetNotLoaded
	}

	var sheets, specs []DocRef
	if r.ds.Discipline == DisciplineMechanical {
		item, ok := r.ds.ContractItems.Get(contractItemID)
		if !ok {
			return SheetsSpecs{}, nil
		}
		sheets, specs = item.Sheets, item.Specs
	} else {
		i, ok := r.bidsByID[contractItemID]
		if !ok {
			return SheetsSpecs{}, nil
		}
		sheets, specs = r.ds.BidItems[i].Sheets, r.ds.BidItems[i].Specs
	}

	return SheetsSpecs{Sheets: docRefStrings(sheets), Specs: docRefStrings(specs)}, nil
}

// ResolveScopeItemAggregate unions the sheets and specs of every contract item
// a scope item is combined from. Each distinct string appears once, in
// first-seen order.
func (r *Resolver) ResolveScopeItemAggregate(item ScopeItem) (SheetsSpecs, error) {
	if r.ds == nil {
		return SheetsSpecs{}, ErrDatasetNotLoaded
	}

	var agg SheetsSpecs
	seenSheets := make(map[string]struct{})
	seenSpecs := make(map[string]struct{})
	for _, id := range item.CombinedFrom {
		if !id.Valid {
			continue
		}
		ss, err := r.ResolveSheetsSpecs(id.Value)
		if err != nil {
			return SheetsSpecs{}, err
		}
		agg.Sheets = appendUnique(agg.Sheets, seenSheets, ss.Sheets)
		agg.Specs = appendUnique(agg.Specs, seenSpecs, ss.Specs)
	}
	return agg, nil
}

// ContractDescription returns the tooltip text for a derived contract id.
func (r *Resolver) ContractDescription(id FlexID) string {
	if r.ds != nil && id.Valid {
		if item, ok := r.ds.ContractItems.Get(id.Value); ok {
			return item.Description
		}
	}
	return "Contract Item " + id.String()
}

func appendUnique(dst []string, seen map[string]struct{}, values []string) []string {
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}

func docRefStrings(refs []DocRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if s := r.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
