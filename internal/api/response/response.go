// Package response writes the JSON bodies shared by every API handler.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the envelope for every non-2xx body. Details carries
// optional machine-readable context, such as a per-field validation map.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status code. A nil
// data writes the status line only. Encoding failures are logged; at that
// point the status line is already on the wire.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes a structured ErrorResponse with the given status code.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
