package handlers

import (
	"io/fs"
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// Register binds the session middleware and every route to the router.
func Register(se *core.ServeEvent, d *Deps, static fs.FS) {
	se.Router.GET("/static/{path...}", apis.Static(static, false))

	se.Router.BindFunc(SessionMiddleware(d.Sessions))

	// ── Scope browser ────────────────────────────────────────
	se.Router.GET("/scopes", HandleScopesPage(d))
	se.Router.POST("/scopes/{scopeId}/select", HandleScopeSelect(d))
	se.Router.POST("/scopes/toggle", HandleCategoryToggle(d))
	se.Router.POST("/scopes/filter/{filter}", HandleStatusFilter(d))
	se.Router.POST("/scopes/category-filter/all", HandleCategoryCheckAll(d))
	se.Router.POST("/scopes/category-filter", HandleCategoryCheck(d))

	// ── GRPS MEP ─────────────────────────────────────────────
	se.Router.GET("/grps", HandleGRPSPage(d))
	se.Router.POST("/grps/discipline/{discipline}", HandleGRPSDiscipline(d))
	se.Router.POST("/grps/view/{view}", HandleGRPSView(d))

	// ── Package mapping ──────────────────────────────────────
	se.Router.GET("/package-mapping", HandlePackageMapping(d))

	// ── Exports ──────────────────────────────────────────────
	se.Router.GET("/export-grps-excel", HandleExportGRPSExcel(d))
	se.Router.GET("/export-grps-pdf", HandleExportGRPSPDF(d))
	se.Router.GET("/export-package-mapping-excel", HandleExportPackageMappingExcel(d))
	se.Router.GET("/export-bid-items-excel", HandleExportBidItemsExcel(d))

	// ── Raw data files ───────────────────────────────────────
	se.Router.GET("/data/{path...}", HandleDataFile(d))

	se.Router.GET("/", func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "/scopes")
	})
}
