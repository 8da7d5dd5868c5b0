package handlers

import (
	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
	"bidscope/templates"
)

// Deps is what every handler needs: the data loader and the view sessions.
type Deps struct {
	Source   services.Source
	Loader   *services.Loader
	Sessions *services.SessionStore
}

// NewDeps returns handler dependencies reading data from src.
func NewDeps(src services.Source) *Deps {
	return &Deps{
		Source:   src,
		Loader:   services.NewLoader(src),
		Sessions: services.NewSessionStore(),
	}
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// renderPage writes content alone for HTMX requests and the full page
// otherwise.
func renderPage(e *core.RequestEvent, title string, content templ.Component) error {
	component := content
	if !isHTMX(e) {
		component = templates.Page(title, GetSidebarData(e.Request), content)
	}
	return component.Render(e.Request.Context(), e.Response)
}
