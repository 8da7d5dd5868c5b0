package services

// CategoryGroup is one accordion section of the scope browser.
type CategoryGroup struct {
	Name     string
	Total    int // items after the document reference exclusion
	Expanded bool
	Items    []BidItem // items passing the status filter
}

// StatusCounts are the tab badges. They ignore the active status filter.
type StatusCounts struct {
	All     int
	Pending int
	Yes     int
	No      int
}

// Of returns the count shown on the tab for f.
func (c StatusCounts) Of(f StatusFilter) int {
	switch f {
	case FilterPending:
		return c.Pending
	case FilterYes:
		return c.Yes
	case FilterNo:
		return c.No
	}
	return c.All
}

// Accordion is the display model of one scope.
type Accordion struct {
	Found      bool
	Categories []CategoryGroup
	Counts     StatusCounts
}

// BuildAccordion groups the items of a scope for display. Document reference
// placeholders are dropped before anything is counted or filtered; categories
// left with no rows under the active filter are omitted.
func BuildAccordion(bd *BidData, state *ViewState) Accordion {
	categories, ok := bd.BidItems[state.Scope]
	if !ok {
		return Accordion{}
	}

	acc := Accordion{Found: true}
	for _, name := range bd.Categories(state.Scope) {
		kept := make([]BidItem, 0, len(categories[name]))
		for _, item := range categories[name] {
			if !IsDocumentReferenceItem(item) {
				kept = append(kept, item)
			}
		}

		for _, item := range kept {
			acc.Counts.All++
			switch {
			case isPending(item.Status):
				acc.Counts.Pending++
			case item.Status == StatusYes:
				acc.Counts.Yes++
			case item.Status == StatusNo:
				acc.Counts.No++
			}
		}

		var visible []BidItem
		for _, item := range kept {
			if state.Filter.Matches(item.Status) {
				visible = append(visible, item)
			}
		}
		if len(visible) == 0 {
			continue
		}

		acc.Categories = append(acc.Categories, CategoryGroup{
			Name:     name,
			Total:    len(kept),
			Expanded: state.IsExpanded(name),
			Items:    visible,
		})
	}
	return acc
}
