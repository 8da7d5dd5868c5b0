package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
	"bidscope/templates"
)

const scopesTitle = "Bid Items by Scope"

// scopeMutation changes a session's view state. bd is nil when data.json
// failed to load.
type scopeMutation func(st *services.ViewState, bd *services.BidData)

// renderScopes loads data.json, applies mutate to the session state and
// renders the scope browser from the resulting state.
func renderScopes(e *core.RequestEvent, d *Deps, mutate scopeMutation) error {
	bd, err := d.Loader.LoadBidData(e.Request.Context())
	if err != nil {
		log.Printf("scopes: %v", err)
		bd = nil
	}

	var data templates.ScopesPageData
	d.Sessions.Update(GetSessionID(e.Request), func(st *services.ViewState) {
		if bd != nil && !st.HasCategories() {
			st.SetCategories(bd.Categories(st.Scope))
		}
		if mutate != nil {
			mutate(st, bd)
		}
		data = buildScopesPageData(bd, st)
	})
	return renderPage(e, scopesTitle, templates.ScopesContent(data))
}

// buildScopesPageData maps the bid data and view state to the template data.
func buildScopesPageData(bd *services.BidData, st *services.ViewState) templates.ScopesPageData {
	var data templates.ScopesPageData

	var acc services.Accordion
	if bd == nil {
		data.LoadError = templates.LoadErrorMessage
	} else {
		for _, s := range bd.Scopes {
			data.Scopes = append(data.Scopes, templates.ScopeNavItem{
				ID:       s.ID,
				Code:     s.Code,
				Name:     s.Name,
				IsActive: s.ID == st.Scope,
			})
		}
		if s, ok := bd.Scope(st.Scope); ok {
			data.ScopeName = s.Name
		}
		acc = services.BuildAccordion(bd, st)
		data.NoItems = len(acc.Categories) == 0
	}
	data.ScopeID = st.Scope

	for _, f := range services.StatusFilters() {
		data.Tabs = append(data.Tabs, templates.StatusTab{
			Filter:   string(f),
			Label:    f.Label(),
			Count:    acc.Counts.Of(f),
			IsActive: st.Filter == f,
		})
	}

	for _, cat := range acc.Categories {
		section := templates.CategorySection{
			Name:      cat.Name,
			ItemCount: cat.Total,
			Expanded:  cat.Expanded,
		}
		for _, item := range cat.Items {
			section.Rows = append(section.Rows, templates.BidItemRow{
				ItemNumber:  item.ItemNumber,
				Description: item.Description,
				StatusIcon:  services.StatusIcon(item.Status),
				DrawingRefs: refLinks(item.DrawingRefs),
				SpecRefs:    refLinks(item.SpecRefs),
				Hidden:      !cat.Expanded,
			})
		}
		data.Categories = append(data.Categories, section)
	}

	for _, name := range st.CategoryOptions() {
		data.CategoryOptions = append(data.CategoryOptions, templates.CategoryOption{
			Name:    name,
			Checked: st.IsCategoryChecked(name),
		})
	}
	data.SelectAllState = string(st.SelectAllState())
	return data
}

func refLinks(refs []services.Ref) []templates.RefLink {
	links := make([]templates.RefLink, 0, len(refs))
	for _, r := range refs {
		links = append(links, templates.RefLink{
			Category: r.Category,
			Title:    strings.Join(r.Items, ", "),
			Count:    r.Count,
			HasItems: len(r.Items) > 0,
		})
	}
	return links
}

// HandleScopesPage renders the scope browser.
func HandleScopesPage(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderScopes(e, d, nil)
	}
}

// HandleScopeSelect switches the active scope.
func HandleScopeSelect(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		scopeID := e.Request.PathValue("scopeId")
		if scopeID == "" {
			return e.String(http.StatusBadRequest, "Missing scope ID")
		}
		return renderScopes(e, d, func(st *services.ViewState, bd *services.BidData) {
			var categories []string
			if bd != nil {
				categories = bd.Categories(scopeID)
			}
			st.SelectScope(scopeID, categories)
		})
	}
}

// HandleCategoryToggle expands or collapses a category.
func HandleCategoryToggle(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.FormValue("category")
		if category == "" {
			return e.String(http.StatusBadRequest, "Missing category")
		}
		return renderScopes(e, d, func(st *services.ViewState, _ *services.BidData) {
			st.ToggleCategory(category)
		})
	}
}

// HandleStatusFilter switches the status tab.
func HandleStatusFilter(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter, err := services.ParseStatusFilter(e.Request.PathValue("filter"))
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid filter")
		}
		return renderScopes(e, d, func(st *services.ViewState, _ *services.BidData) {
			st.SetFilter(filter)
		})
	}
}

// HandleCategoryCheck records a single category checkbox change.
func HandleCategoryCheck(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.FormValue("category")
		if category == "" {
			return e.String(http.StatusBadRequest, "Missing category")
		}
		checked := formBool(e.Request.FormValue("checked"))
		return renderScopes(e, d, func(st *services.ViewState, _ *services.BidData) {
			st.SetCategoryChecked(category, checked)
		})
	}
}

// HandleCategoryCheckAll applies the select-all category checkbox.
func HandleCategoryCheckAll(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		checked := formBool(e.Request.FormValue("checked"))
		return renderScopes(e, d, func(st *services.ViewState, _ *services.BidData) {
			st.SetAllCategoriesChecked(checked)
		})
	}
}

// formBool reads a checkbox value. Unchecked boxes are not submitted at all.
func formBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "on", "1":
		return true
	}
	return false
}
