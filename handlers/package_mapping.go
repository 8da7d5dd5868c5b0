package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
	"bidscope/templates"
)

// HandlePackageMapping renders the package group to spec mapping page.
func HandlePackageMapping(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pm, err := d.Loader.LoadPackageMappings(e.Request.Context())
		return renderPage(e, "Package Mapping", templates.PackageMappingContent(buildPackageMappingData(pm, err)))
	}
}

func buildPackageMappingData(pm *services.PackageMappings, loadErr error) templates.PackageMappingData {
	var data templates.PackageMappingData
	if loadErr != nil {
		data.LoadError = "Error loading package mapping data."
	}
	for _, d := range services.Disciplines() {
		view := templates.PackageDisciplineView{Title: d.Title()}
		for _, g := range pm.Groups[d] {
			group := templates.PackageGroupView{Name: g.Name}
			for _, s := range g.Specs {
				group.Specs = append(group.Specs, s.String())
			}
			view.Groups = append(view.Groups, group)
		}
		data.Disciplines = append(data.Disciplines, view)
	}
	return data
}
