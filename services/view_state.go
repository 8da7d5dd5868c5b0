package services

import (
	"fmt"
	"sort"
)

// GRPSView selects which GRPS table is shown.
type GRPSView string

const (
	GRPSViewBidItems      GRPSView = "bid-items"
	GRPSViewContractItems GRPSView = "contract-items"
	GRPSViewScopeItems    GRPSView = "scope-items"
)

// GRPSViews returns the views in toggle order.
func GRPSViews() []GRPSView {
	return []GRPSView{GRPSViewBidItems, GRPSViewContractItems, GRPSViewScopeItems}
}

// ParseGRPSView validates a view name.
func ParseGRPSView(s string) (GRPSView, error) {
	for _, v := range GRPSViews() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown grps view %q", s)
}

// Label returns the toggle button text.
func (v GRPSView) Label() string {
	switch v {
	case GRPSViewContractItems:
		return "Contract Items"
	case GRPSViewScopeItems:
		return "Scope Items"
	}
	return "Bid Items"
}

// TriState is the state of the "select all" category checkbox.
type TriState string

const (
	TriChecked       TriState = "checked"
	TriUnchecked     TriState = "unchecked"
	TriIndeterminate TriState = "indeterminate"
)

// DefaultScope is active until the user picks another scope.
const DefaultScope = "electrical"

// ViewState is the interaction state of one browser session.
type ViewState struct {
	Scope          string
	Filter         StatusFilter
	GRPSDiscipline Discipline
	GRPSView       GRPSView

	expanded   map[string]struct{}
	categories []string
	checked    map[string]bool
}

// NewViewState returns the initial state: default scope, all items, nothing
// expanded, electrical bid items in the GRPS view.
func NewViewState() *ViewState {
	return &ViewState{
		Scope:          DefaultScope,
		Filter:         FilterAll,
		GRPSDiscipline: DisciplineElectrical,
		GRPSView:       GRPSViewBidItems,
		expanded:       make(map[string]struct{}),
		checked:        make(map[string]bool),
	}
}

// SelectScope switches scope. The expanded set is always cleared and the
// category checkboxes are repopulated, all checked.
func (s *ViewState) SelectScope(id string, categories []string) {
	s.Scope = id
	s.expanded = make(map[string]struct{})
	s.SetCategories(categories)
}

// SetCategories repopulates the category checkbox list, all checked.
func (s *ViewState) SetCategories(categories []string) {
	s.categories = append([]string(nil), categories...)
	sort.Strings(s.categories)
	s.checked = make(map[string]bool, len(categories))
	for _, c := range s.categories {
		s.checked[c] = true
	}
}

// HasCategories reports whether the checkbox list has been populated.
func (s *ViewState) HasCategories() bool {
	return s.categories != nil
}

// ToggleCategory flips the expanded state of a category.
func (s *ViewState) ToggleCategory(name string) {
	if _, ok := s.expanded[name]; ok {
		delete(s.expanded, name)
		return
	}
	s.expanded[name] = struct{}{}
}

// IsExpanded reports whether a category shows its rows.
func (s *ViewState) IsExpanded(name string) bool {
	_, ok := s.expanded[name]
	return ok
}

// ExpandedCount returns the size of the expanded set.
func (s *ViewState) ExpandedCount() int {
	return len(s.expanded)
}

// SetFilter replaces the status filter.
func (s *ViewState) SetFilter(f StatusFilter) {
	s.Filter = f
}

// SetCategoryChecked records a category checkbox change. Only the select-all
// indicator reacts; the table is not filtered by category.
func (s *ViewState) SetCategoryChecked(name string, checked bool) {
	if _, known := s.checked[name]; !known {
		return
	}
	s.checked[name] = checked
}

// SetAllCategoriesChecked applies the select-all checkbox to every category.
func (s *ViewState) SetAllCategoriesChecked(checked bool) {
	for _, c := range s.categories {
		s.checked[c] = checked
	}
}

// IsCategoryChecked reports the checkbox state of a category.
func (s *ViewState) IsCategoryChecked(name string) bool {
	return s.checked[name]
}

// CategoryOptions returns the checkbox categories in display order.
func (s *ViewState) CategoryOptions() []string {
	return append([]string(nil), s.categories...)
}

// SelectAllState derives the select-all checkbox from the individual boxes.
func (s *ViewState) SelectAllState() TriState {
	if len(s.categories) == 0 {
		return TriUnchecked
	}
	n := 0
	for _, c := range s.categories {
		if s.checked[c] {
			n++
		}
	}
	switch n {
	case 0:
		return TriUnchecked
	case len(s.categories):
		return TriChecked
	}
	return TriIndeterminate
}

// SelectGRPSDiscipline switches the GRPS discipline tab.
func (s *ViewState) SelectGRPSDiscipline(d Discipline) {
	s.GRPSDiscipline = d
}

// SelectGRPSView switches between bid, contract and scope item tables.
func (s *ViewState) SelectGRPSView(v GRPSView) {
	s.GRPSView = v
}
