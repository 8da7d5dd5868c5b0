package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
)

type exportFunc func(ctx context.Context) (services.Export, error)

// handleExport runs build and sends the file as an attachment. Failures are
// reported through an error toast.
func handleExport(name string, build exportFunc) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, err := build(e.Request.Context())
		if err != nil {
			log.Printf("%s: failed to generate: %v", name, err)
			if errors.Is(err, services.ErrNothingToExport) {
				return ErrorToast(e, http.StatusNotFound, "No data to export.")
			}
			return ErrorToast(e, http.StatusInternalServerError, "Error exporting file. Please check the server.")
		}

		e.Response.Header().Set("Content-Type", file.ContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
		e.Response.WriteHeader(http.StatusOK)
		e.Response.Write(file.Data)
		return nil
	}
}

// HandleExportGRPSExcel downloads the GRPS scope item mapping workbook.
func HandleExportGRPSExcel(d *Deps) func(*core.RequestEvent) error {
	return handleExport("export_grps_excel", d.Loader.ExportGRPSExcel)
}

// HandleExportGRPSPDF downloads the GRPS scope item mapping PDF.
func HandleExportGRPSPDF(d *Deps) func(*core.RequestEvent) error {
	return handleExport("export_grps_pdf", d.Loader.ExportGRPSPDF)
}

// HandleExportPackageMappingExcel downloads the package mapping workbook.
func HandleExportPackageMappingExcel(d *Deps) func(*core.RequestEvent) error {
	return handleExport("export_package_mapping", d.Loader.ExportPackageMappingExcel)
}

// HandleExportBidItemsExcel downloads the bid items workbook.
func HandleExportBidItemsExcel(d *Deps) func(*core.RequestEvent) error {
	return handleExport("export_bid_items", d.Loader.ExportBidItemsExcel)
}
