package handlers

import (
	"errors"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"path"

	"github.com/pocketbase/pocketbase/core"

	"bidscope/services"
)

var servedFiles = func() map[string]bool {
	m := make(map[string]bool)
	for _, name := range services.DataFiles() {
		m[name] = true
	}
	return m
}()

// HandleDataFile serves one of the known data files. Any other path under
// the data directory, such as the server's own pb_data, is reported missing.
// data.json is marked uncacheable so a regenerated file is picked up on the
// next load.
func HandleDataFile(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		name := e.Request.PathValue("path")
		if !fs.ValidPath(name) || name == "." {
			return e.String(http.StatusBadRequest, "Invalid path")
		}
		if !servedFiles[name] {
			return e.String(http.StatusNotFound, "File not found")
		}

		data, err := d.Source.ReadFile(e.Request.Context(), name)
		if errors.Is(err, services.ErrSourceNotFound) {
			return e.String(http.StatusNotFound, "File not found")
		}
		if err != nil {
			log.Printf("data_files: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to read file")
		}

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "text/plain; charset=utf-8"
		}
		e.Response.Header().Set("Content-Type", contentType)
		e.Response.Header().Set("Access-Control-Allow-Origin", "*")
		if name == services.DataFileName {
			e.Response.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			e.Response.Header().Set("Pragma", "no-cache")
			e.Response.Header().Set("Expires", "0")
		}
		e.Response.WriteHeader(http.StatusOK)
		e.Response.Write(data)
		return nil
	}
}
