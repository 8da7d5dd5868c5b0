package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
	"bidscope/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFixtureDeps returns handler deps reading the full fixture data set.
func newFixtureDeps() *Deps {
	return NewDeps(services.FSSource{FS: testhelpers.FixtureFS()})
}

// newEmptyDeps returns handler deps whose every data file is missing.
func newEmptyDeps() *Deps {
	return NewDeps(services.FSSource{FS: fstest.MapFS{}})
}

// newSessionRequest builds a request bound to a view session. form is sent
// url-encoded when non-nil.
func newSessionRequest(method, target, sessionID string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	ctx := context.WithValue(req.Context(), SessionIDKey, sessionID)
	return req.WithContext(ctx)
}

// serve runs handler against req and returns the recorder.
func serve(t *testing.T, app *pocketbase.PocketBase, handler func(*core.RequestEvent) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}
