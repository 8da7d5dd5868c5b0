package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
	"bidscope/templates"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"
const SidebarDataKey contextKey = "sidebarData"

// SessionCookie names the cookie that carries the view session id.
const SessionCookie = "view_session"

// GetSessionID extracts the view session id from the request context.
func GetSessionID(r *http.Request) string {
	if val, ok := r.Context().Value(SessionIDKey).(string); ok {
		return val
	}
	return ""
}

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{}
}

// sessionlessPrefixes are asset and raw data routes that never read view
// state, so they neither create nor refresh a session.
var sessionlessPrefixes = []string{"/static/", "/data/"}

// SessionMiddleware reads the "view_session" cookie, creates a session when
// the cookie is missing or stale, and stores the session id and sidebar data
// in the request context.
func SessionMiddleware(sessions *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		for _, prefix := range sessionlessPrefixes {
			if strings.HasPrefix(e.Request.URL.Path, prefix) {
				return e.Next()
			}
		}

		var current string
		if cookie, err := e.Request.Cookie(SessionCookie); err == nil {
			current = cookie.Value
		}

		id := sessions.Ensure(current)
		if id != current {
			http.SetCookie(e.Response, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), SessionIDKey, id)
		e.Request = e.Request.WithContext(ctx)

		ctx = context.WithValue(e.Request.Context(), SidebarDataKey, BuildSidebarData(e.Request))
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
