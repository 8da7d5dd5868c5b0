package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
	"bidscope/templates"
)

const grpsTitle = "GRPS MEP"

// renderGRPS applies mutate, then loads the active discipline and renders
// the active view.
func renderGRPS(e *core.RequestEvent, d *Deps, mutate func(*services.ViewState)) error {
	var (
		disc services.Discipline
		view services.GRPSView
	)
	d.Sessions.Update(GetSessionID(e.Request), func(st *services.ViewState) {
		if mutate != nil {
			mutate(st)
		}
		disc, view = st.GRPSDiscipline, st.GRPSView
	})

	ds, err := d.Loader.LoadDiscipline(e.Request.Context(), disc)
	if err != nil {
		log.Printf("grps: error loading %s GRPS data: %v", disc, err)
	}
	return renderPage(e, grpsTitle, templates.GRPSContent(buildGRPSPageData(disc, view, ds, err)))
}

func buildGRPSPageData(disc services.Discipline, view services.GRPSView, ds *services.GRPSDataset, loadErr error) templates.GRPSPageData {
	data := templates.GRPSPageData{
		Discipline: string(disc),
		Loaded:     loadErr == nil && ds != nil,
	}
	for _, d := range services.Disciplines() {
		data.Disciplines = append(data.Disciplines, templates.TabItem{
			Value:    string(d),
			Label:    d.Title(),
			IsActive: d == disc,
		})
	}
	for _, v := range services.GRPSViews() {
		data.Views = append(data.Views, templates.TabItem{
			Value:    string(v),
			Label:    v.Label(),
			IsActive: v == view,
		})
	}
	if loadErr != nil {
		data.LoadError = "Error loading " + disc.Title() + " GRPS data."
		return data
	}

	data.Table = templates.GRPSTableView{Kind: templates.ViewKind(view)}
	for _, r := range services.GRPSRows(ds, view) {
		row := templates.GRPSRow{
			ID:          r.ID,
			Description: r.Description,
			Sheets:      r.Sheets,
			Specs:       r.Specs,
		}
		for _, dc := range r.Derived {
			row.Badges = append(row.Badges, templates.ContractBadge{ID: dc.ID, Tooltip: dc.Description})
		}
		data.Table.Rows = append(data.Table.Rows, row)
	}
	return data
}

// HandleGRPSPage renders the GRPS MEP page.
func HandleGRPSPage(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderGRPS(e, d, nil)
	}
}

// HandleGRPSDiscipline switches the discipline tab.
func HandleGRPSDiscipline(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		disc, err := services.ParseDiscipline(e.Request.PathValue("discipline"))
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid discipline")
		}
		return renderGRPS(e, d, func(st *services.ViewState) {
			st.SelectGRPSDiscipline(disc)
		})
	}
}

// HandleGRPSView switches between the bid, contract and scope item tables.
func HandleGRPSView(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		view, err := services.ParseGRPSView(e.Request.PathValue("view"))
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid view")
		}
		return renderGRPS(e, d, func(st *services.ViewState) {
			st.SelectGRPSView(view)
		})
	}
}
