package services

import "testing"

func TestViewState_Defaults(t *testing.T) {
	st := NewViewState()
	if st.Scope != DefaultScope || st.Filter != FilterAll {
		t.Errorf("defaults = %s/%s", st.Scope, st.Filter)
	}
	if st.GRPSDiscipline != DisciplineElectrical || st.GRPSView != GRPSViewBidItems {
		t.Errorf("grps defaults = %s/%s", st.GRPSDiscipline, st.GRPSView)
	}
	if st.ExpandedCount() != 0 || st.HasCategories() {
		t.Error("new state must have nothing expanded and no categories")
	}
}

func TestViewState_ToggleTwiceRestores(t *testing.T) {
	st := NewViewState()
	st.ToggleCategory("Lighting")
	if !st.IsExpanded("Lighting") {
		t.Fatal("expected Lighting expanded")
	}
	st.ToggleCategory("Lighting")
	if st.IsExpanded("Lighting") || st.ExpandedCount() != 0 {
		t.Error("toggling twice must restore membership")
	}
}

func TestViewState_SelectScopeClearsExpanded(t *testing.T) {
	for _, target := range []string{"plumbing", "electrical", "unknown"} {
		t.Run(target, func(t *testing.T) {
			st := NewViewState()
			st.ToggleCategory("Lighting")
			st.ToggleCategory("Power")
			st.SelectScope(target, []string{"B", "A"})
			if st.ExpandedCount() != 0 {
				t.Errorf("expanded = %d after SelectScope, want 0", st.ExpandedCount())
			}
			if st.Scope != target {
				t.Errorf("scope = %q, want %q", st.Scope, target)
			}
			opts := st.CategoryOptions()
			if len(opts) != 2 || opts[0] != "A" || opts[1] != "B" {
				t.Errorf("category options = %v, want [A B]", opts)
			}
		})
	}
}

func TestViewState_SelectAllState(t *testing.T) {
	st := NewViewState()
	if st.SelectAllState() != TriUnchecked {
		t.Errorf("no categories = %s, want unchecked", st.SelectAllState())
	}

	st.SetCategories([]string{"Lighting", "Power"})
	if st.SelectAllState() != TriChecked {
		t.Errorf("all checked = %s", st.SelectAllState())
	}

	st.SetCategoryChecked("Power", false)
	if st.SelectAllState() != TriIndeterminate {
		t.Errorf("one unchecked = %s", st.SelectAllState())
	}

	st.SetCategoryChecked("Unknown", false)
	if st.IsCategoryChecked("Unknown") {
		t.Error("unknown category must be ignored")
	}

	st.SetAllCategoriesChecked(false)
	if st.SelectAllState() != TriUnchecked {
		t.Errorf("all unchecked = %s", st.SelectAllState())
	}

	st.SetAllCategoriesChecked(true)
	if st.SelectAllState() != TriChecked || !st.IsCategoryChecked("Power") {
		t.Errorf("select all = %s", st.SelectAllState())
	}
}

func TestViewState_GRPSSelection(t *testing.T) {
	st := NewViewState()
	st.SelectGRPSDiscipline(DisciplinePlumbing)
	st.SelectGRPSView(GRPSViewScopeItems)
	if st.GRPSDiscipline != DisciplinePlumbing || st.GRPSView != GRPSViewScopeItems {
		t.Errorf("grps = %s/%s", st.GRPSDiscipline, st.GRPSView)
	}
}

func TestParseGRPSView(t *testing.T) {
	for _, v := range GRPSViews() {
		got, err := ParseGRPSView(string(v))
		if err != nil || got != v {
			t.Errorf("ParseGRPSView(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := ParseGRPSView("tables"); err == nil {
		t.Error("expected error for unknown view")
	}
}
