package handlers

import (
	"net/http"
	"strings"
	"testing"
	"testing/fstest"

	"bidscope/services"
	"bidscope/testhelpers"
)

func TestHandleDataFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newFixtureDeps()

	tests := []struct {
		name    string
		path    string
		status  int
		noCache bool
	}{
		{"data.json is not cached", "data.json", http.StatusOK, true},
		{"package file", "Data/elec_package.txt", http.StatusOK, false},
		{"grps file", "grps_plumbing_scope_items.json", http.StatusOK, false},
		{"missing file", "nope.json", http.StatusNotFound, false},
		{"parent traversal", "../secret", http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newSessionRequest(http.MethodGet, "/data/"+tt.path, "", nil)
			req.SetPathValue("path", tt.path)
			rec := serve(t, app, HandleDataFile(d), req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			cc := rec.Header().Get("Cache-Control")
			if tt.noCache && cc != "no-cache, no-store, must-revalidate" {
				t.Errorf("Cache-Control = %q", cc)
			}
			if !tt.noCache && cc != "" {
				t.Errorf("unexpected Cache-Control %q", cc)
			}
		})
	}
}

func TestHandleDataFile_Body(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newSessionRequest(http.MethodGet, "/data/data.json", "", nil)
	req.SetPathValue("path", "data.json")
	rec := serve(t, app, HandleDataFile(newFixtureDeps()), req)

	if rec.Body.String() != testhelpers.DataJSON {
		t.Error("body differs from data.json")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestHandleDataFile_OnlyKnownFiles(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	fsys := testhelpers.FixtureFS()
	fsys["pb_data/data.db"] = &fstest.MapFile{Data: []byte("SQLite format 3 secret")}
	fsys["Data/notes.txt"] = &fstest.MapFile{Data: []byte("secret notes")}
	d := NewDeps(services.FSSource{FS: fsys})

	for _, name := range []string{"pb_data/data.db", "Data/notes.txt"} {
		t.Run(name, func(t *testing.T) {
			req := newSessionRequest(http.MethodGet, "/data/"+name, "", nil)
			req.SetPathValue("path", name)
			rec := serve(t, app, HandleDataFile(d), req)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if strings.Contains(rec.Body.String(), "secret") {
				t.Error("response leaked file contents")
			}
		})
	}
}
