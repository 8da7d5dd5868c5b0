package handlers

import (
	"net/http"
	"strings"

	"bidscope/templates"
)

var navItems = []templates.NavItem{
	{Label: "Scopes", Href: "/scopes"},
	{Label: "GRPS MEP", Href: "/grps"},
	{Label: "Package Mapping", Href: "/package-mapping"},
}

// BuildSidebarData constructs the SidebarData for the request path. An item is
// active when the path is its href or below it.
func BuildSidebarData(r *http.Request) templates.SidebarData {
	data := templates.SidebarData{ActivePath: r.URL.Path}
	for _, item := range navItems {
		item.IsActive = r.URL.Path == item.Href || strings.HasPrefix(r.URL.Path, item.Href+"/")
		data.Items = append(data.Items, item)
	}
	return data
}
