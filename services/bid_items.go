package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Ref groups the drawing or spec references of a bid item under a category.
// Count is supplied by the data file and is what the UI displays.
type Ref struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
	Count    int      `json:"count"`
}

// BidItem is a single line item of data.json.
type BidItem struct {
	ItemNumber  string `json:"itemNumber"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DrawingRefs []Ref  `json:"drawingRefs"`
	SpecRefs    []Ref  `json:"specRefs"`
}

// Scope is a top-level grouping selectable in the navigation.
type Scope struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// BidData is the content of data.json.
type BidData struct {
	Scopes   []Scope                         `json:"scopes"`
	BidItems map[string]map[string][]BidItem `json:"bidItems"`
}

// ParseBidData decodes data.json.
func ParseBidData(data []byte) (*BidData, error) {
	var bd BidData
	if err := json.Unmarshal(data, &bd); err != nil {
		return nil, fmt.Errorf("parse data.json: %w", err)
	}
	if bd.BidItems == nil {
		bd.BidItems = make(map[string]map[string][]BidItem)
	}
	return &bd, nil
}

// Scope returns the scope with the given id.
func (bd *BidData) Scope(id string) (Scope, bool) {
	for _, s := range bd.Scopes {
		if s.ID == id {
			return s, true
		}
	}
	return Scope{}, false
}

// Categories returns the sorted category names of a scope.
func (bd *BidData) Categories(scopeID string) []string {
	cats := bd.BidItems[scopeID]
	names := make([]string, 0, len(cats))
	for name := range cats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RefMismatch records a Ref whose Count disagrees with len(Items).
type RefMismatch struct {
	Scope      string
	Category   string
	ItemNumber string
	Ref        Ref
}

func (m RefMismatch) String() string {
	return fmt.Sprintf("%s/%s item %s: ref %q count=%d items=%d",
		m.Scope, m.Category, m.ItemNumber, m.Ref.Category, m.Ref.Count, len(m.Ref.Items))
}

// ValidateRefCounts reports every drawing or spec Ref whose Count differs from
// the number of listed items. Display still trusts Count.
func ValidateRefCounts(bd *BidData) []RefMismatch {
	var out []RefMismatch
	scopeIDs := make([]string, 0, len(bd.BidItems))
	for id := range bd.BidItems {
		scopeIDs = append(scopeIDs, id)
	}
	sort.Strings(scopeIDs)

	for _, scopeID := range scopeIDs {
		for _, cat := range bd.Categories(scopeID) {
			for _, item := range bd.BidItems[scopeID][cat] {
				for _, refs := range [][]Ref{item.DrawingRefs, item.SpecRefs} {
					for _, r := range refs {
						if r.Count != len(r.Items) {
							out = append(out, RefMismatch{Scope: scopeID, Category: cat, ItemNumber: item.ItemNumber, Ref: r})
						}
					}
				}
			}
		}
	}
	return out
}

const (
	StatusPending = "Pending"
	StatusYes     = "Yes"
	StatusNo      = "No"
)

// Status icons.
const (
	IconYes     = "✓"
	IconNo      = "✗"
	IconPending = "🕐"
)

// StatusIcon maps a status to its glyph. Anything that is not Yes or No,
// including the empty string, is pending.
func StatusIcon(status string) string {
	switch status {
	case StatusYes:
		return IconYes
	case StatusNo:
		return IconNo
	default:
		return IconPending
	}
}

func isPending(status string) bool {
	return status == StatusPending || status == ""
}

// StatusFilter is the active status tab.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterPending StatusFilter = "pending"
	FilterYes     StatusFilter = "yes"
	FilterNo      StatusFilter = "no"
)

// StatusFilters returns the tabs in display order.
func StatusFilters() []StatusFilter {
	return []StatusFilter{FilterAll, FilterPending, FilterYes, FilterNo}
}

// ParseStatusFilter validates a filter name.
func ParseStatusFilter(s string) (StatusFilter, error) {
	for _, f := range StatusFilters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Label returns the tab label.
func (f StatusFilter) Label() string {
	switch f {
	case FilterPending:
		return "Pending"
	case FilterYes:
		return "Yes"
	case FilterNo:
		return "No"
	}
	return "All"
}

// Matches reports whether an item with the given status passes the filter.
func (f StatusFilter) Matches(status string) bool {
	switch f {
	case FilterPending:
		return isPending(status)
	case FilterYes:
		return status == StatusYes
	case FilterNo:
		return status == StatusNo
	}
	return true
}

var docRefsMarker = cases.Fold().String("all document references")

// IsDocumentReferenceItem reports whether the item is an "All Document
// References" placeholder, which is never listed nor counted.
func IsDocumentReferenceItem(item BidItem) bool {
	if item.Description == "" {
		return false
	}
	return strings.Contains(cases.Fold().String(item.Description), docRefsMarker)
}
