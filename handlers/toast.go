package handlers

import (
	"encoding/json"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// toast is the payload of the client side "showToast" event.
type toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SetToast sets the HX-Trigger response header so the client fires a
// showToast event. Events already present in the header are kept.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	events := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			events = map[string]any{}
		}
	}
	events["showToast"] = toast{Message: message, Type: toastType}

	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast sets an error toast and tells HTMX not to swap the response body.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
