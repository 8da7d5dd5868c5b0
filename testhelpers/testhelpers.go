// Package testhelpers provides utilities for testing the PocketBase app and
// a small but complete set of data files.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pocketbase/pocketbase"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// DataJSON has two scopes. The electrical scope holds one status of each kind
// plus an "All Document References" placeholder.
const DataJSON = `{
  "scopes": [
    {"id": "electrical", "code": "26", "name": "Electrical"},
    {"id": "plumbing", "code": "22", "name": "Plumbing"}
  ],
  "bidItems": {
    "electrical": {
      "Power": [
        {"itemNumber": "10", "description": "Panelboards", "status": "No",
         "drawingRefs": [{"category": "Power Plans", "items": ["E-201"], "count": 1}],
         "specRefs": []},
        {"itemNumber": "11", "description": "Feeders", "status": "Pending",
         "drawingRefs": [], "specRefs": []}
      ],
      "Lighting": [
        {"itemNumber": "2", "description": "LED fixtures", "status": "Yes",
         "drawingRefs": [{"category": "Lighting Plans", "items": ["E-101", "E-102"], "count": 2}],
         "specRefs": [{"category": "Division 26", "items": ["26 51 00"], "count": 1}]},
        {"itemNumber": "1", "description": "Emergency lighting", "status": "",
         "drawingRefs": [], "specRefs": []},
        {"itemNumber": "3", "description": "All Document References", "status": "Pending",
         "drawingRefs": [], "specRefs": []}
      ]
    },
    "plumbing": {
      "Fixtures": [
        {"itemNumber": "1", "description": "Water closets", "status": "Yes",
         "drawingRefs": [], "specRefs": []}
      ]
    }
  }
}`

// FixtureFS returns every data file the app reads.
func FixtureFS() fstest.MapFS {
	files := map[string]string{
		"data.json": DataJSON,

		"grps_electrical_bid_items.json": `{
  "LED fixtures": {"id": 1, "sheets": [["E-101", "Lighting Plan"]], "specs": ["26 51 00"]},
  "Panelboards": {"id": "2", "sheets": [["E-201", "Power Plan"], ["E-101", "Lighting Plan"]], "specs": []}
}`,
		"grps_electrical_contract_items.json": "```json\n{\"1\": \"Lighting fixtures\", \"2\": \"Panelboards \\\"main\\\" and feeders\"}\n```",
		"grps_electrical_scope_items.json": `{
  "Lighting Package": {"scope_item_id": 1, "combined_from": [1, 2]},
  "Spare": {"scope_item_id": 2, "combined_from": []}
}`,

		"grps_mechanical_bid_items.json": `{
  "Air handling units": {"id": 1, "sheets": [], "specs": []}
}`,
		"grps_mechanical_contract_items.json": `{
  "Air handling units": {"id": 1, "sheets": [["M-101", "HVAC Plan"]], "specs": [["23 73 00", "AHUs"]]},
  "Ductwork": {"id": "2", "sheets": ["M-102"], "specs": []}
}`,
		"grps_mechanical_scope_items.json": `{
  "HVAC Package": {"scope_item_id": 1, "combined_from": [1, 2, 9]}
}`,

		"grps_plumbing_bid_items.json": `{
  "Water closets": {"id": 1, "sheets": [["P-101", "Plumbing Plan"]], "specs": ["22 42 00"]},
  "Lavatories": {"id": 2, "sheets": [["P-101", "Plumbing Plan"]], "specs": []}
}`,
		"grps_plumbing_contract_items.json": `{
  "WC": "Water closets, floor mounted",
  "LAV": "Lavatories, wall hung"
}`,
		"grps_plumbing_scope_items.json": `{
  "Fixtures Package": {"scope_item_id": 1, "combined_from": [1, 2]}
}`,

		"Data/elec_package.txt": `{"Lighting": ["26 51 00 - Interior Lighting"], "Power": ["26 24 16 - Panelboards", "26 05 19 - Conductors"]}`,
		"Data/mech_package.txt": `{"HVAC": ["23 73 00 - Air Handling Units"]}`,
		"Data/plumbing_package.txt": `{"Fixtures": [{"code": "22 42 00", "title": "Commercial Plumbing Fixtures"}]}`,
	}

	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// WriteFixtures writes fsys to a temporary directory and returns its path.
func WriteFixtures(t *testing.T, fsys fstest.MapFS) string {
	t.Helper()

	dir := t.TempDir()
	for name, f := range fsys {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
