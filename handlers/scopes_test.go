package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"bidscope/services"
	"bidscope/templates"
	"bidscope/testhelpers"
)

func TestHandleScopesPage_FullAndPartial(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newFixtureDeps()
	sid := d.Sessions.Ensure("")

	full := serve(t, app, HandleScopesPage(d), newSessionRequest(http.MethodGet, "/scopes", sid, nil))
	if full.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", full.Code)
	}
	testhelpers.AssertHTMLContains(t, full.Body.String(),
		"<!doctype html>",
		`id="scopes-content"`,
		`data-scope-id="electrical"`,
		"Emergency lighting",
		`id="countAll">4</span>`,
		`id="countPending">2</span>`,
		`id="countYes">1</span>`,
		`id="countNo">1</span>`,
		`<span class="category-count">(2 items)</span>`,
	)
	testhelpers.AssertHTMLNotContains(t, full.Body.String(), "All Document References")

	req := newSessionRequest(http.MethodGet, "/scopes", sid, nil)
	req.Header.Set("HX-Request", "true")
	partial := serve(t, app, HandleScopesPage(d), req)
	if strings.Contains(partial.Body.String(), "<!doctype html>") {
		t.Error("HTMX request must render the content partial only")
	}
	testhelpers.AssertHTMLContains(t, partial.Body.String(), `id="scopes-content"`)
}

func TestHandleScopesPage_LoadError(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newEmptyDeps()
	sid := d.Sessions.Ensure("")

	rec := serve(t, app, HandleScopesPage(d), newSessionRequest(http.MethodGet, "/scopes", sid, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), templates.LoadErrorMessage)
}

func TestHandleCategoryToggle(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newFixtureDeps()
	sid := d.Sessions.Ensure("")
	form := url.Values{"category": {"Lighting"}}

	rec := serve(t, app, HandleCategoryToggle(d), newSessionRequest(http.MethodPost, "/scopes/toggle", sid, form))
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `class="category-row expanded"`)

	rec = serve(t, app, HandleCategoryToggle(d), newSessionRequest(http.MethodPost, "/scopes/toggle", sid, form))
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), `class="category-row expanded"`)

	rec = serve(t, app, HandleCategoryToggle(d), newSessionRequest(http.MethodPost, "/scopes/toggle", sid, url.Values{}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing category status = %d, want 400", rec.Code)
	}
}

func TestHandleStatusFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newFixtureDeps()
	sid := d.Sessions.Ensure("")

	req := newSessionRequest(http.MethodPost, "/scopes/filter/yes", sid, nil)
	req.SetPathValue("filter", "yes")
	rec := serve(t, app, HandleStatusFilter(d), req)

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "LED fixtures", `class="tab active" data-filter="yes"`, `id="countAll">4</span>`)
	testhelpers.AssertHTMLNotContains(t, body, "Panelboards", `<span class="category-name">Power</span>`)

	req = newSessionRequest(http.MethodPost, "/scopes/filter/maybe", sid, nil)
	req.SetPathValue("filter", "maybe")
	rec = serve(t, app, HandleStatusFilter(d), req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid filter status = %d, want 400", rec.Code)
	}
}

func TestHandleScopeSelect_ClearsExpanded(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newFixtureDeps()
	sid := d.Sessions.Ensure("")

	serve(t, app, HandleCategoryToggle(d), newSessionRequest(http.MethodPost, "/scopes/toggle", sid, url.Values{"category": {"Lighting"}}))

	req := newSessionRequest(http.MethodPost, "/scopes/plumbing/select", sid, nil)
	req.SetPathValue("scopeId", "plumbing")
	rec := serve(t, app, HandleScopeSelect(d), req)
	// Plumbing only holds a document reference placeholder.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No bid items found", `class="scope-item active" data-scope-id="plumbing"`)

	req = newSessionRequest(http.MethodPost, "/scopes/electrical/select", sid, nil)
	req.SetPathValue("scopeId", "electrical")
	rec = serve(t, app, HandleScopeSelect(d), req)
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), `class="category-row expanded"`)

	d.Sessions.Update(sid, func(st *services.ViewState) {
		if st.ExpandedCount() != 0 {
			t.Errorf("expanded = %d after scope switch, want 0", st.ExpandedCount())
		}
	})
}

func TestHandleCategoryCheck_TriState(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newFixtureDeps()
	sid := d.Sessions.Ensure("")

	// An unchecked box submits no "checked" value.
	rec := serve(t, app, HandleCategoryCheck(d), newSessionRequest(http.MethodPost, "/scopes/category-filter", sid, url.Values{"category": {"Power"}}))
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `data-indeterminate="true"`)

	rec = serve(t, app, HandleCategoryCheckAll(d), newSessionRequest(http.MethodPost, "/scopes/category-filter/all", sid, url.Values{"checked": {"true"}}))
	body := rec.Body.String()
	testhelpers.AssertHTMLNotContains(t, body, `data-indeterminate="true"`)
	// Category checkboxes never filter the table.
	testhelpers.AssertHTMLContains(t, body, "Panelboards", "LED fixtures")

	serve(t, app, HandleCategoryCheckAll(d), newSessionRequest(http.MethodPost, "/scopes/category-filter/all", sid, url.Values{}))
	d.Sessions.Update(sid, func(st *services.ViewState) {
		if st.SelectAllState() != services.TriUnchecked {
			t.Errorf("select all = %s, want unchecked", st.SelectAllState())
		}
	})
}

func TestFormBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true}, {"on", true}, {"1", true}, {"TRUE", true},
		{"", false}, {"false", false}, {"off", false},
	}
	for _, tt := range tests {
		if got := formBool(tt.in); got != tt.want {
			t.Errorf("formBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
